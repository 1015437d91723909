package main

import (
	"os"
	"reflect"
	"testing"
)

func TestReadConfig_ValidYAML(t *testing.T) {
	// Arrange
	tempFile := createTempFileWithContent(
		`workbooksDir: "./contabilidad"
masterSheetName: "GYP"
headerSearchWindow: 40
sheetNameDenyList:
  - resumen
  - portada
exclusionMarkers:
  - TOTAL
  - SALDO
bankAccounts:
  "BANCO MERCANTIL": "1101"
  "BANCO USD": "1102"
exchangeRate: "45.30"
detailedOutput: true
timeZoneLocation: "America/Caracas"
`,
	)
	defer os.Remove(tempFile.Name())

	// Act
	cfg, err := readConfig(tempFile.Name())

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	if cfg.WorkbooksDir != "./contabilidad" {
		t.Errorf("Expected WorkbooksDir to be './contabilidad', got '%s'", cfg.WorkbooksDir)
	}
	if cfg.HeaderSearchWindow != 40 {
		t.Errorf("Expected HeaderSearchWindow to be 40, got %d", cfg.HeaderSearchWindow)
	}
	if !reflect.DeepEqual(cfg.SheetNameDenyList, []string{"resumen", "portada"}) {
		t.Errorf("Unexpected SheetNameDenyList: %v", cfg.SheetNameDenyList)
	}
	if cfg.BankAccounts["BANCO MERCANTIL"] != "1101" {
		t.Errorf("Unexpected BankAccounts: %v", cfg.BankAccounts)
	}
	if cfg.ExchangeRate != "45.30" {
		t.Errorf("Expected ExchangeRate to be '45.30', got '%s'", cfg.ExchangeRate)
	}
	if !cfg.DetailedOutput {
		t.Error("Expected DetailedOutput to be true")
	}
	if cfg.TimeZoneLocation != "America/Caracas" {
		t.Errorf("Expected TimeZoneLocation to be 'America/Caracas', got '%s'", cfg.TimeZoneLocation)
	}
}

func TestReadConfig_Defaults(t *testing.T) {
	tempFile := createTempFileWithContent(
		`workbooksDir: "./contabilidad"
timeZoneLocation: "UTC"
`,
	)
	defer os.Remove(tempFile.Name())

	cfg, err := readConfig(tempFile.Name())

	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	if cfg.MasterSheetName != "GYP" {
		t.Errorf("Expected default MasterSheetName 'GYP', got '%s'", cfg.MasterSheetName)
	}
	if cfg.HeaderSearchWindow != defaultHeaderSearchWindow {
		t.Errorf("Expected default HeaderSearchWindow %d, got %d", defaultHeaderSearchWindow, cfg.HeaderSearchWindow)
	}
	if !reflect.DeepEqual(cfg.SheetNameDenyList, defaultSheetNameDenyList) {
		t.Errorf("Unexpected default SheetNameDenyList: %v", cfg.SheetNameDenyList)
	}
	if !reflect.DeepEqual(cfg.ExclusionMarkers, defaultExclusionMarkers) {
		t.Errorf("Unexpected default ExclusionMarkers: %v", cfg.ExclusionMarkers)
	}
}

func TestReadConfig_WorkbookSourceRequired(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "no source at all",
			content: "detailedOutput: false\n",
			wantErr: true,
		},
		{
			name: "both sources set",
			content: `workbooksDir: "./contabilidad"
gcsBucket: "adonai-contabilidad"
`,
			wantErr: true,
		},
		{
			name:    "gcs only",
			content: "gcsBucket: \"adonai-contabilidad\"\ngcsPrefix: \"2024/\"\n",
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempFile := createTempFileWithContent(tt.content)
			defer os.Remove(tempFile.Name())

			_, err := readConfig(tempFile.Name())
			if (err != nil) != tt.wantErr {
				t.Errorf("readConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadConfig_UnknownFieldRejected(t *testing.T) {
	tempFile := createTempFileWithContent(
		`workbooksDir: "./contabilidad"
someUnknownOption: true
`,
	)
	defer os.Remove(tempFile.Name())

	if _, err := readConfig(tempFile.Name()); err == nil {
		t.Error("Expected error for unknown field, got nil")
	}
}

func TestReadConfig_InvalidTimezone(t *testing.T) {
	tempFile := createTempFileWithContent(
		`workbooksDir: "./contabilidad"
timeZoneLocation: "Not/AZone"
`,
	)
	defer os.Remove(tempFile.Name())

	_, err := readConfig(tempFile.Name())
	checkErrorContainsSubstring(t, err, "invalid timezone location")
}

func TestReadConfig_MissingFile(t *testing.T) {
	if _, err := readConfig("definitely_not_existing_config.yaml"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func createTempFileWithContent(content string) *os.File {
	tempFile, err := os.CreateTemp("", "test_config_*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tempFile.WriteString(content); err != nil {
		panic(err)
	}
	return tempFile
}
