// Package importer carga alias en bloque desde CSV pasando por las mismas reglas que la API.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
)

// Codificaciones aceptadas para el fichero de entrada.
const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "latin1"
)

// AliasCreator alta de un alias; lo cumple *usecase.AliasUseCase.
type AliasCreator interface {
	Create(ctx context.Context, in dto.CreateAliasRequest) (*dto.AliasResponse, error)
}

// Row fila leída del CSV con su número de línea (la cabecera es la 1).
type Row struct {
	Line    int
	Request dto.CreateAliasRequest
}

// RowIssue fila saltada o rechazada.
type RowIssue struct {
	Line   int
	Name   string
	Reason string
}

// Summary resultado de una importación.
type Summary struct {
	Created  int
	Skipped  []RowIssue // nombre ya activo
	Rejected []RowIssue // datos inválidos o empresa inexistente
}

// ReadAliases lee un CSV con cabecera. Columnas: name (obligatoria), company_id, category, priority.
func ReadAliases(r io.Reader, encoding string) ([]Row, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf-8":
	case EncodingLatin1, "iso-8859-1":
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	default:
		return nil, fmt.Errorf("codificación %q no soportada (utf8 o latin1)", encoding)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV vacío")
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("falta la columna name")
	}
	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []Row
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		req := dto.CreateAliasRequest{
			Name:     field(rec, "name"),
			Category: field(rec, "category"),
		}
		if id := field(rec, "company_id"); id != "" {
			req.CompanyID = &id
		}
		if p := field(rec, "priority"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("línea %d: prioridad %q no es un entero", line, p)
			}
			req.Priority = &n
		}
		rows = append(rows, Row{Line: line, Request: req})
	}
	return rows, nil
}

// Import da de alta cada fila. Duplicados y filas inválidas se anotan y se continúa;
// cualquier otro error (base de datos caída, contexto cancelado) corta la importación.
func Import(ctx context.Context, creator AliasCreator, rows []Row) (*Summary, error) {
	sum := &Summary{}
	for _, row := range rows {
		_, err := creator.Create(ctx, row.Request)
		switch {
		case err == nil:
			sum.Created++
		case errors.Is(err, domain.ErrDuplicate):
			sum.Skipped = append(sum.Skipped, RowIssue{Line: row.Line, Name: row.Request.Name, Reason: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNotFound):
			sum.Rejected = append(sum.Rejected, RowIssue{Line: row.Line, Name: row.Request.Name, Reason: err.Error()})
		default:
			return sum, fmt.Errorf("línea %d (%s): %w", row.Line, row.Request.Name, err)
		}
	}
	return sum, nil
}
