package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobAlertModel 职位提醒收件箱模型
type JobAlertModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      uint64             `bson:"user_id" json:"userId"`           // 提醒接收者ID
	JobID       uint64             `bson:"job_id" json:"jobId"`             // 关联的职位ID
	CompanyID   uint64             `bson:"company_id" json:"companyId"`     // 发布职位的公司ID
	JobTitle    string             `bson:"job_title" json:"jobTitle"`       // 职位标题快照
	CompanyName string             `bson:"company_name" json:"companyName"` // 公司名称快照
	Segment     string             `bson:"segment" json:"segment"`          // 职位经验分层
	ApplyLink   string             `bson:"apply_link" json:"applyLink"`     // 投递链接快照
	IsRead      bool               `bson:"is_read" json:"isRead"`           // 是否已读
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`     // 创建时间
}
