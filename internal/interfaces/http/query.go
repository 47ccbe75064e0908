package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/internal/domain"
)

// parseSeriesRequest lee la selección de la query string.
//
//	item=PARAFUSO&mode=monthly&years=2023,2024&months=1&months=2&business_unit=1
//
// years/months aceptan listas separadas por comas o parámetros repetidos. Omitido
// significa "todos"; presente y vacío (years=) significa "ninguno".
func parseSeriesRequest(c *fiber.Ctx) (dto.SeriesRequest, error) {
	req := dto.SeriesRequest{
		Item: strings.TrimSpace(c.Query("item")),
		Mode: c.Query("mode"),
	}

	var err error
	if req.Years, req.YearsSet, err = queryInts(c, "years"); err != nil {
		return req, err
	}
	if req.Months, req.MonthsSet, err = queryInts(c, "months"); err != nil {
		return req, err
	}

	if raw := strings.TrimSpace(c.Query("business_unit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: business_unit %q no es un entero", domain.ErrInvalidInput, raw)
		}
		req.BusinessUnit = &n
	}
	return req, nil
}

func queryInts(c *fiber.Ctx, key string) ([]int, bool, error) {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil, false, nil
	}
	out := []int{}
	for _, raw := range args.PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, true, fmt.Errorf("%w: %s contiene %q, se esperaba un entero", domain.ErrInvalidInput, key, part)
			}
			out = append(out, n)
		}
	}
	return out, true, nil
}
