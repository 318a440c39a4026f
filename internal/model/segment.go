package model

import "fmt"

// Segment 经验分层，User 与 Job 共用同一枚举，Feed 按精确相等匹配
type Segment string

const (
	SegmentInternship Segment = "INTERNSHIP"
	SegmentFresher    Segment = "FRESHER_OR_LESS_THAN_1_YEAR"
	SegmentOneToThree Segment = "ONE_TO_THREE_YEARS"
)

// ParseSegment 校验并转换原始字符串
func ParseSegment(s string) (Segment, error) {
	seg := Segment(s)
	switch seg {
	case SegmentInternship, SegmentFresher, SegmentOneToThree:
		return seg, nil
	}
	return "", fmt.Errorf("unknown segment %q", s)
}

// CompanyCategory 公司行业分类
type CompanyCategory string

const (
	CategoryTech          CompanyCategory = "TECH"
	CategoryFinance       CompanyCategory = "FINANCE"
	CategoryHealthcare    CompanyCategory = "HEALTHCARE"
	CategoryEducation     CompanyCategory = "EDUCATION"
	CategoryEcommerce     CompanyCategory = "ECOMMERCE"
	CategoryManufacturing CompanyCategory = "MANUFACTURING"
	CategoryConsulting    CompanyCategory = "CONSULTING"
)

// ParseCompanyCategory 校验并转换原始字符串
func ParseCompanyCategory(s string) (CompanyCategory, error) {
	c := CompanyCategory(s)
	switch c {
	case CategoryTech, CategoryFinance, CategoryHealthcare, CategoryEducation,
		CategoryEcommerce, CategoryManufacturing, CategoryConsulting:
		return c, nil
	}
	return "", fmt.Errorf("unknown company category %q", s)
}
