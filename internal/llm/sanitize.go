package llm

import (
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// SanitizeFields normalizes a loosely-typed fields object before mapping:
//   - renames known synonyms (po_number -> poNumber, items -> lineItems, ...)
//   - trims string fields and drops null/empty values
//   - coerces line-item quantity to a number, dropping unparseable values
//     so the mapping layer defaults them to 0
//   - removes unknown keys (strict additionalProperties friendliness)
func SanitizeFields(in map[string]any, logger *slog.Logger) (map[string]any, []string) {
	if logger == nil {
		logger = slog.Default()
	}

	m := maps.Clone(in)
	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to the record's keys
	renamed("customer_internal_id", "customerInternalId")
	renamed("customer_request_date", "customerRequestDate")
	renamed("po_number", "poNumber")
	renamed("ship_to_select", "shipToSelect")
	renamed("shipTo", "shipToSelect")
	renamed("line_items", "lineItems")
	renamed("items", "lineItems")

	// 2) trim header strings; drop null / empty / wrong types
	headerKeys := []string{"customerInternalId", "customerRequestDate", "poNumber", "shipToSelect"}
	for _, k := range headerKeys {
		v, ok := m[k]
		if !ok {
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			delete(m, k)
			dropped = append(dropped, k+"(type)")
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			delete(m, k)
			dropped = append(dropped, k+"(empty)")
			continue
		}
		m[k] = s
	}

	// 3) line items: keep only item/quantity per entry, coerce quantity
	if v, ok := m["lineItems"]; ok {
		arr, isArr := v.([]any)
		if !isArr {
			delete(m, "lineItems")
			dropped = append(dropped, "lineItems(type)")
		} else {
			clean := make([]any, 0, len(arr))
			for i, e := range arr {
				entry, ok := e.(map[string]any)
				if !ok {
					dropped = append(dropped, "lineItems["+strconv.Itoa(i)+"](type)")
					continue
				}
				ce := map[string]any{}
				if it, ok := entry["item"].(string); ok {
					if s := strings.TrimSpace(it); s != "" {
						ce["item"] = s
					}
				}
				if q, ok := coerceQuantity(entry["quantity"]); ok {
					ce["quantity"] = q
				} else if _, present := entry["quantity"]; present {
					dropped = append(dropped, "lineItems["+strconv.Itoa(i)+"].quantity")
				}
				clean = append(clean, ce)
			}
			m["lineItems"] = clean
		}
	}

	// 4) remove unknown keys
	allowed := map[string]struct{}{
		"customerInternalId": {}, "customerRequestDate": {},
		"poNumber": {}, "shipToSelect": {}, "lineItems": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	if len(dropped) > 0 {
		logger.Warn("extract.sanitize", "dropped", dropped)
	}
	return m, dropped
}

// coerceQuantity accepts JSON numbers and numeric strings; negatives are
// clamped to 0 per the record's non-negative quantity contract.
func coerceQuantity(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0, true
		}
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		if f < 0 {
			return 0, true
		}
		return f, true
	default:
		return 0, false
	}
}
