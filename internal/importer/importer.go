package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cardstack/internal/domain"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath   string // Path to the .xlsx, .csv or .yaml file
	SheetName  string // Sheet to import; empty means the first sheet
	SkipHeader bool   // Skip the first row of tabular files
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:   path,
		SkipHeader: true,
	}
}

// ImportResult holds the result of reading a deck file
type ImportResult struct {
	Cards   []domain.Card
	Skipped int
	Errors  []string
}

// yamlDeck is the document form of a YAML deck; a bare list of cards is also accepted
type yamlDeck struct {
	Cards []domain.Card `yaml:"cards"`
}

// ReadCards reads prompt-answer pairs from a deck file, picking the format by extension.
// In tabular files column A holds the prompt and column B the answer.
func ReadCards(config ImportConfig) (*ImportResult, error) {
	switch ext := strings.ToLower(filepath.Ext(config.FilePath)); ext {
	case ".xlsx", ".xlsm":
		return readExcel(config)
	case ".csv":
		return readCSV(config)
	case ".yaml", ".yml":
		return readYAML(config)
	default:
		return nil, fmt.Errorf("unsupported deck format %q", ext)
	}
}

func readExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := config.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return fromRows(rows, config.SkipHeader), nil
}

func readCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}

	return fromRows(rows, config.SkipHeader), nil
}

func readYAML(config ImportConfig) (*ImportResult, error) {
	data, err := os.ReadFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}

	var cards []domain.Card
	if err := yaml.Unmarshal(data, &cards); err != nil {
		var deck yamlDeck
		if docErr := yaml.Unmarshal(data, &deck); docErr != nil {
			return nil, fmt.Errorf("failed to parse YAML deck: %w", err)
		}
		cards = deck.Cards
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, c := range cards {
		c.Prompt = strings.TrimSpace(c.Prompt)
		c.Answer = strings.TrimSpace(c.Answer)
		if c.Prompt == "" || c.Answer == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Card %d: prompt and answer are required", i+1))
			continue
		}
		result.Cards = append(result.Cards, c)
	}
	return result, nil
}

// fromRows turns spreadsheet rows into cards, skipping incomplete rows
func fromRows(rows [][]string, skipHeader bool) *ImportResult {
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if skipHeader && i == 0 {
			continue
		}

		var prompt, answer string
		if len(row) > 0 {
			prompt = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			answer = strings.TrimSpace(row[1])
		}

		// Blank lines are not worth reporting
		if prompt == "" && answer == "" {
			continue
		}
		if prompt == "" || answer == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: prompt and answer are required", i+1))
			continue
		}

		result.Cards = append(result.Cards, domain.Card{Prompt: prompt, Answer: answer})
	}

	return result
}
