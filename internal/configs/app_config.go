package configs

type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// MySQL configuration
	MysqlDbName      string `mapstructure:"mysql_db_name"`
	MysqlHost        string `mapstructure:"mysql_host"`
	MysqlPort        int    `mapstructure:"mysql_port"`
	MysqlUsername    string `mapstructure:"mysql_username"`
	MysqlPassword    string `mapstructure:"mysql_password"`
	MysqlMaxPoolSize int    `mapstructure:"mysql_max_pool_size"`
	MysqlMinPoolSize int    `mapstructure:"mysql_min_pool_size"`

	// Redis configuration (durable cart slots)
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDb       int    `mapstructure:"redis_db"`

	// Catalog cache
	CatalogCacheSizeBytes  int `mapstructure:"catalog_cache_size_bytes"`
	CatalogCacheTtlSeconds int `mapstructure:"catalog_cache_ttl_seconds"`

	// Auth configuration
	JwtSecret      string `mapstructure:"jwt_secret"`
	JwtExpiryHours int    `mapstructure:"jwt_expiry_hours"`
	AdminEmails    string `mapstructure:"admin_emails"`

	// Metrics
	TelegrafAddress string `mapstructure:"telegraf_address"`

	// Background jobs
	SessionPurgeCronExpression string `mapstructure:"session_purge_cron_expression"`

	// Payment instruction configuration
	PaymentBankCode     string `mapstructure:"payment_bank_code"`
	PaymentAccountNo    string `mapstructure:"payment_account_no"`
	PaymentAccountName  string `mapstructure:"payment_account_name"`
	PaymentQrTemplate   string `mapstructure:"payment_qr_template"`
	PaymentMomoPhone    string `mapstructure:"payment_momo_phone"`
	PaymentTransferNote string `mapstructure:"payment_transfer_note"`
}
