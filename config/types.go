package config

type config struct {
	Server   server
	Mongo    mongo
	Redis    redis
	RabbitMq rabbitmq
	Jwt      jwt
	Cors     cors
}

type server struct {
	Addr string
}

type mongo struct {
	Uri      string
	Database string
}

type redis struct {
	Addr     string
	Password string
}

type rabbitmq struct {
	Addr     string
	Username string
	Password string
}

type jwt struct {
	Secret string
}

type cors struct {
	AllowOrigins []string
}
