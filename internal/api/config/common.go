package config

// Config 配置主体
type Config struct {
	Server                    ServerConfig               `mapstructure:"server"`
	DB                        DBConfig                   `mapstructure:"database"`
	Redis                     RedisConfig                `mapstructure:"redis"`
	Mongo                     MongoConfig                `mapstructure:"mongo"`
	MinIO                     MinIOConfig                `mapstructure:"minio"`
	Elastic                   ElasticConfig              `mapstructure:"elastic"`
	Auth                      AuthConfig                 `mapstructure:"auth"`
	Admin                     AdminConfig                `mapstructure:"admin"`
	Push                      PushConfig                 `mapstructure:"push"`
	Logstash                  LogstashConfig             `mapstructure:"logstash"`
	Kafka                     KafkaConfig                `mapstructure:"kafka"`
	KafkaJobConsumer          KafkaJobConsumer           `mapstructure:"kafka_job_consumer"`
	KafkaCompanyFollowConsumer KafkaCompanyFollowConsumer `mapstructure:"kafka_company_follow_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig Mongo配置，用于站内通知收件箱
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// MinIOConfig MinIO配置，用于简历存储
type MinIOConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	ResumeBucket string `mapstructure:"resume_bucket"`
	UseSSL       bool   `mapstructure:"use_ssl"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	JobIndex string `mapstructure:"job_index"`
}

// AuthConfig 身份提供方签发 Token 的校验配置
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// AdminConfig 管理端静态密钥，与用户 JWT 属于不同信任域
type AdminConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// PushConfig 推送网关配置
type PushConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaJobConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type KafkaCompanyFollowConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
