package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Elastic  elastic  `yaml:"elastic" mapstructure:"elastic"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Jaeger   jaeger   `yaml:"jaeger" mapstructure:"jaeger"`
}

type server struct {
	Addr      string `yaml:"addr"`
	PublicUrl string `yaml:"public_url" mapstructure:"public_url"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicUrl string `yaml:"public_url" mapstructure:"public_url"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type elastic struct {
	Addr string `yaml:"addr"`
}

type jwt struct {
	AccessSecret  string `yaml:"access_secret" mapstructure:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret" mapstructure:"refresh_secret"`
}

type jaeger struct {
	Addr string `yaml:"addr"`
}
