package dto

// ResumeTempMetadata 未被内推请求引用的简历文件元信息，存于 Redis 哈希
type ResumeTempMetadata struct {
	UserID    uint64 `json:"userId"`
	CreatedAt int64  `json:"createdAt"`
}
