// 内推请求状态机：
//
//	PENDING ──► APPROVED ──► SENT
//	    │
//	    └──────► REJECTED
//
// REJECTED 与 SENT 为终态。
package model

import "fmt"

// OutreachStatus 与 outreach_requests.status 列一一对应
type OutreachStatus string

const (
	OutreachPending  OutreachStatus = "PENDING"
	OutreachApproved OutreachStatus = "APPROVED"
	OutreachRejected OutreachStatus = "REJECTED"
	OutreachSent     OutreachStatus = "SENT"
)

// validOutreachTransitions 列出所有允许的 (from → to) 组合
var validOutreachTransitions = map[OutreachStatus][]OutreachStatus{
	OutreachPending:  {OutreachApproved, OutreachRejected},
	OutreachApproved: {OutreachSent},
	// REJECTED / SENT 为终态，无出边
}

// ParseOutreachStatus 校验并转换原始字符串
func ParseOutreachStatus(s string) (OutreachStatus, error) {
	st := OutreachStatus(s)
	switch st {
	case OutreachPending, OutreachApproved, OutreachRejected, OutreachSent:
		return st, nil
	}
	return "", fmt.Errorf("unknown outreach status %q", s)
}

// IsOutreachTransitionAllowed 判断 from → to 是否被状态机允许
func IsOutreachTransitionAllowed(from, to OutreachStatus) bool {
	allowed, ok := validOutreachTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
