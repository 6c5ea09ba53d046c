package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/inventory-manager/internal/forms"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

var csvColumns = []string{"id", "name", "quantity", "price"}

type csvRow struct {
	Line  int
	Input forms.ProductInput
	Err   error
}

// parseCSV reads rows with an id,name,quantity,price header (any column order).
// Cells are parsed like form fields; a bad cell marks its row and does not stop the file.
func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", col)
		}
	}

	var rows []csvRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		in, err := forms.ParseProduct(
			record[index["id"]],
			record[index["name"]],
			record[index["quantity"]],
			record[index["price"]],
		)
		rows = append(rows, csvRow{Line: line, Input: in, Err: err})
	}
	return rows, nil
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Rows are added in file order. With mode=update an existing ID is updated instead of reported.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with id,name,quantity,price header"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} ErrorResponse "Invalid file"
// @Router /admin/import [post]
// @Security BearerAuth
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := ImportProductsResult{Errors: []ImportRowError{}}
	for _, row := range rows {
		err := row.Err
		if err == nil {
			in := row.Input
			_, err = s.products.Add(in.ID, in.Name, in.Quantity, in.Price)
			if errors.Is(err, repo.ErrDuplicatedValueUnique) && mode == "update" {
				_, err = s.products.UpdateByID(in.ID, in.Name, in.Quantity, in.Price)
			}
		}
		if err != nil {
			result.Errors = append(result.Errors, ImportRowError{Row: row.Line, Description: err.Error()})
			continue
		}
		result.ImportedProductsCount++
	}

	s.log.Info().Int("imported", result.ImportedProductsCount).Int("rejected", len(result.Errors)).Str("mode", mode).Msg("csv import")
	s.respond(w, http.StatusOK, result)
}
