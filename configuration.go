package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/thlib/go-timezone-local/tzlocal"
	"gopkg.in/yaml.v3"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("timezone", validateTimezone)
}

func validateTimezone(fl validator.FieldLevel) bool {
	timezone := fl.Field().String()
	if timezone == "" {
		return true // Empty timezone is allowed, will be replaced with system default
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

type Config struct {
	// WorkbooksDir is a local directory with the source workbooks.
	// Either this or GcsBucket must be set.
	WorkbooksDir string `yaml:"workbooksDir,omitempty"`
	// GcsBucket is the cloud drive bucket with the source workbooks.
	GcsBucket string `yaml:"gcsBucket,omitempty"`
	// GcsPrefix narrows the object listing inside the bucket.
	GcsPrefix string `yaml:"gcsPrefix,omitempty"`
	// MasterSheetName is the reference tab with code/name pairs.
	MasterSheetName string `yaml:"masterSheetName,omitempty"`
	// HeaderSearchWindow is how many top rows are scanned for a header row.
	HeaderSearchWindow int `yaml:"headerSearchWindow,omitempty" validate:"min=0,max=1000"`
	// SheetNameDenyList skips summary tabs by name substring.
	SheetNameDenyList []string `yaml:"sheetNameDenyList,omitempty"`
	// ExclusionMarkers reject running-total rows by description substring.
	ExclusionMarkers []string `yaml:"exclusionMarkers,omitempty"`
	// BankAccounts maps sheet names to ERP ledger account codes for the journal.
	BankAccounts map[string]string `yaml:"bankAccounts,omitempty"`
	// ExchangeRate is the default BS-per-USD rate, overridable from the CLI.
	ExchangeRate string `yaml:"exchangeRate,omitempty"`
	// DetailedOutput lists every accepted transaction per account in the text report.
	DetailedOutput bool `yaml:"detailedOutput"`
	// TimeZoneLocation stamps run timestamps, system timezone when empty.
	TimeZoneLocation string `yaml:"timeZoneLocation,omitempty" validate:"timezone"`
}

func readConfig(filename string) (*Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	decoder := yaml.NewDecoder(strings.NewReader(string(buf)))
	decoder.KnownFields(true) // Disallow unknown fields
	if err = decoder.Decode(cfg); err != nil {
		if err.Error() == "EOF" {
			return nil, fmt.Errorf("can't decode YAML from configuration file '%s': %v", filename, err)
		}
		return nil, err
	}

	// Set default values.
	if cfg.MasterSheetName == "" {
		cfg.MasterSheetName = "GYP"
	}
	if cfg.HeaderSearchWindow == 0 {
		cfg.HeaderSearchWindow = defaultHeaderSearchWindow
	}
	if cfg.SheetNameDenyList == nil {
		cfg.SheetNameDenyList = defaultSheetNameDenyList
	}
	if cfg.ExclusionMarkers == nil {
		cfg.ExclusionMarkers = defaultExclusionMarkers
	}
	if len(cfg.TimeZoneLocation) == 0 {
		tzname, err := tzlocal.RuntimeTZ()
		if err != nil {
			// Fallback to UTC if system timezone cannot be determined
			cfg.TimeZoneLocation = "UTC"
		} else {
			cfg.TimeZoneLocation = tzname
		}
	}

	// Verify timezone is valid
	_, err = time.LoadLocation(cfg.TimeZoneLocation)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone location '%s': %w", cfg.TimeZoneLocation, err)
	}

	// Check exactly one workbook source is set.
	if (cfg.WorkbooksDir == "") == (cfg.GcsBucket == "") {
		return nil, fmt.Errorf("exactly one of 'workbooksDir' or 'gcsBucket' must be set")
	}

	// Validate other fields
	if err = validate.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
