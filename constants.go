package main

// Application modes
const (
	OPEN_MODE_NONE = "none"
	OPEN_MODE_FILE = "file"
)

// File paths
const (
	DEFAULT_CONFIG_FILE_PATH = "config.yaml"
	RESULT_FILE_PATH         = "Contabilidad Adonai.txt"
	RESULT_XLSX_FILE_PATH    = "Asientos Adonai.xlsx"
)
