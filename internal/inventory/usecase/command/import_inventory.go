package command

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dlvery/dlvery/internal/inventory/domain"
	"github.com/dlvery/dlvery/pkg/logger"
)

var importColumns = []string{
	"sku", "name", "category", "damaged", "perishable",
	"expiryDate", "quantity", "lowStockThreshold",
}

// ImportInventoryCommand represents the command to bulk import a stock feed
type ImportInventoryCommand struct {
	Reader io.Reader
}

// ImportInventoryHandler parses a CSV stock feed into inventory records.
// Rows are processed in file order; the first unparseable row aborts the
// import with a typed ImportError, leaving earlier rows persisted. Rows
// whose SKU already exists are skipped, never overwritten.
type ImportInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewImportInventoryHandler creates a new import inventory handler
func NewImportInventoryHandler(repo domain.InventoryRepository) *ImportInventoryHandler {
	return &ImportInventoryHandler{repo: repo}
}

// Handle executes the import, returning the SKUs written
func (h *ImportInventoryHandler) Handle(ctx context.Context, cmd ImportInventoryCommand) ([]string, error) {
	reader := csv.NewReader(cmd.Reader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &domain.ImportError{Line: 1, Err: fmt.Errorf("missing header: %w", err)}
	}
	columns, err := headerIndex(header)
	if err != nil {
		return nil, &domain.ImportError{Line: 1, Err: err}
	}

	var imported []string
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, &domain.ImportError{Line: line, Err: err}
		}

		item, err := parseRow(record, columns)
		if err != nil {
			return imported, &domain.ImportError{Line: line, Err: err}
		}

		existing, err := h.repo.FindBySKU(ctx, item.SKU)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return imported, fmt.Errorf("failed to check sku %s: %w", item.SKU, err)
		}
		if existing != nil {
			logger.Info(ctx).Str("sku", item.SKU).Msg("Skipping existing SKU in import")
			continue
		}

		if err := h.repo.Save(ctx, item); err != nil {
			return imported, fmt.Errorf("failed to save sku %s: %w", item.SKU, err)
		}
		imported = append(imported, item.SKU)
	}

	logger.Info(ctx).Int("imported", len(imported)).Msg("Inventory import completed")
	return imported, nil
}

// headerIndex maps each known column name to its position. Feeds may
// order columns freely; every column must appear exactly once.
func headerIndex(header []string) (map[string]int, error) {
	if len(header) != len(importColumns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(importColumns), len(header))
	}

	columns := make(map[string]int, len(importColumns))
	for i, got := range header {
		name := ""
		for _, want := range importColumns {
			if strings.EqualFold(strings.TrimSpace(got), want) {
				name = want
				break
			}
		}
		if name == "" {
			return nil, fmt.Errorf("unknown column %q", got)
		}
		if _, dup := columns[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", got)
		}
		columns[name] = i
	}
	return columns, nil
}

func parseRow(record []string, columns map[string]int) (*domain.Inventory, error) {
	if len(record) != len(importColumns) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(importColumns), len(record))
	}

	field := func(name string) string {
		return strings.TrimSpace(record[columns[name]])
	}

	damaged, err := parseBool(field("damaged"))
	if err != nil {
		return nil, fmt.Errorf("damaged: %w", err)
	}
	perishable, err := parseBool(field("perishable"))
	if err != nil {
		return nil, fmt.Errorf("perishable: %w", err)
	}
	quantity, err := strconv.Atoi(field("quantity"))
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}
	threshold, err := strconv.Atoi(field("lowStockThreshold"))
	if err != nil {
		return nil, fmt.Errorf("lowStockThreshold: %w", err)
	}

	return &domain.Inventory{
		ID:                uuid.NewString(),
		SKU:               field("sku"),
		Name:              field("name"),
		Category:          field("category"),
		Damaged:           damaged,
		Perishable:        perishable,
		ExpiryDate:        field("expiryDate"),
		Quantity:          quantity,
		LowStockThreshold: threshold,
	}, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
