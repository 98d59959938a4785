package catalog

import (
	"encoding/json"
	"sort"
	"strings"

	"go.uber.org/zap"

	"bidworks/internal/domain/entities"
	"bidworks/pkg/numeric"
)

// SignVariant is one size/sheeting combination of a designation.
type SignVariant struct {
	Width    float64               `json:"width"`
	Height   float64               `json:"height"`
	Sheeting entities.SheetingType `json:"sheeting"`
}

// SignDesignation is a normalized sign catalog entry.
type SignDesignation struct {
	Designation string        `json:"designation"`
	Description string        `json:"description"`
	Variants    []SignVariant `json:"variants"`
}

// EquipmentRow binds one equipment pricing row to a known equipment kind.
type EquipmentRow struct {
	Type entities.EquipmentType       `json:"type"`
	Info entities.StaticEquipmentInfo `json:"info"`
}

// signCatalogRow is the wire shape of a sign catalog entry. Variants
// arrives as a JSON-encoded string, not a nested array.
type signCatalogRow struct {
	MutcdCode   string `json:"mutcd_code"`
	Description string `json:"description"`
	Variants    string `json:"variants"`
}

// signVariantRow is one entry of the embedded variants document. The
// back office stores dimensions as strings in some rows and numbers in
// others, so the fields stay loosely typed until coercion.
type signVariantRow struct {
	WidthInches  any    `json:"width_inches"`
	LengthInches any    `json:"length_inches"`
	Sheeting     string `json:"sheeting_abbreviated"`
}

// equipmentCatalogRow is the wire shape of an equipment pricing row.
type equipmentCatalogRow struct {
	Name          string `json:"name"`
	Price         any    `json:"price"`
	UsefulLife    any    `json:"depreciation_rate_useful_life"`
	PaybackPeriod any    `json:"payback_period"`
	DiscountRate  any    `json:"discount_rate"`
}

// NormalizeSignCatalog parses the embedded variant documents, coerces
// dimensions, defaults missing sheeting to DG, and sorts the result by
// designation case-insensitively. Rows whose variants cannot be parsed
// are dropped with a warning rather than failing the whole fetch.
func NormalizeSignCatalog(rows []signCatalogRow, log *zap.Logger) []SignDesignation {
	if log == nil {
		log = zap.NewNop()
	}

	out := make([]SignDesignation, 0, len(rows))
	for _, row := range rows {
		if row.MutcdCode == "" {
			log.Warn("skipping sign catalog row without a designation")
			continue
		}

		var rawVariants []signVariantRow
		if err := json.Unmarshal([]byte(row.Variants), &rawVariants); err != nil {
			log.Warn("skipping sign catalog row with malformed variants",
				zap.String("designation", row.MutcdCode),
				zap.Error(err))
			continue
		}

		variants := make([]SignVariant, 0, len(rawVariants))
		for _, v := range rawVariants {
			variants = append(variants, SignVariant{
				Width:    numeric.NonNegative(numeric.FromAny(v.WidthInches)),
				Height:   numeric.NonNegative(numeric.FromAny(v.LengthInches)),
				Sheeting: normalizeSheeting(v.Sheeting),
			})
		}

		out = append(out, SignDesignation{
			Designation: row.MutcdCode,
			Description: row.Description,
			Variants:    variants,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Designation) < strings.ToLower(out[j].Designation)
	})

	return out
}

// NormalizeEquipmentCatalog coerces pricing numbers and binds rows to
// equipment kinds by their display name. Unrecognized names are
// dropped; the seeded default pricing already covers every kind, so a
// missing row just leaves the default in place.
func NormalizeEquipmentCatalog(rows []equipmentCatalogRow) []EquipmentRow {
	out := make([]EquipmentRow, 0, len(rows))
	for _, row := range rows {
		typ, ok := entities.EquipmentTypeByCatalogName(strings.TrimSpace(row.Name))
		if !ok {
			continue
		}
		out = append(out, EquipmentRow{
			Type: typ,
			Info: entities.StaticEquipmentInfo{
				Price:         numeric.NonNegative(numeric.FromAny(row.Price)),
				DiscountRate:  numeric.NonNegative(numeric.FromAny(row.DiscountRate)),
				UsefulLife:    numeric.NonNegative(numeric.FromAny(row.UsefulLife)),
				PaybackPeriod: numeric.NonNegative(numeric.FromAny(row.PaybackPeriod)),
			},
		})
	}
	return out
}

func normalizeSheeting(s string) entities.SheetingType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HI":
		return entities.SheetingHI
	case "DG":
		return entities.SheetingDG
	case "SPECIAL":
		return entities.SheetingSpecial
	default:
		return entities.SheetingDG
	}
}
