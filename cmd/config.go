package cmd

// Config carries the service configuration loaded from the environment.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	VehicleServiceURL string
	// PaymentTimeout is how long an order may await payment before the
	// background job cancels it, e.g. "30m".
	PaymentTimeout string
}
