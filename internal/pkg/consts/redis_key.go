package consts

const (
	UserInfoKey           = "user:info:"
	UserFollowedSetKey    = "user:followed:companies:"
	CompanyFollowerKey    = "company:follower:"
	CompanyFollowerCount  = "company:follower:count:"
	CompanyFollowDirtyKey = "company:follow:dirty"
	AlertUnreadCountKey   = "alert:unread:count:"
	TokenBlacklistPrefix  = "token:blacklist:"
	OutreachQuotaCountKey = "outreach:quota:count:"
	ResumeTempKey         = "resume:temp"
)

const (
	OutreachSubmitLock  = "outreach:submit:lock:"
	UserFollowedSetLock = "user:followed:lock:"
)
