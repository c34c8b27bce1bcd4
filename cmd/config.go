package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	JWTSecret          string
	TokenTTLMinutes    int
	RabbitMQURL        string
	RabbitMQExchange   string
	TaxRateBps         int
	CheckoutTTLMinutes int
	ShippingRates      map[string]int64
}
