package config

// Pricetag holds the defaults of the pricetag command.
type Pricetag struct {
	// Locale selects the currency and number conventions of the printed sale value.
	Locale string `env:"PRICETAG_LOCALE" envDefault:"en-US" validate:"required,bcp47_language_tag"`
}
