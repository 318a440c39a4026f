package consts

const (
	// MonthlyOutreachQuota 每个自然月允许创建的内推请求上限
	MonthlyOutreachQuota = 3

	// FeedDefaultLimit 关注公司职位流的默认分页大小
	FeedDefaultLimit = 10
	// JobListDefaultLimit 全量职位列表的默认分页大小，与 Feed 相互独立
	JobListDefaultLimit = 20
	// MaxPageLimit 分页大小硬上限
	MaxPageLimit = 100

	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

const (
	MimeTypePDF = "application/pdf"
)
