package invoice

import "github.com/pwnz15/backend-sld/models"

// ComputeTotals derives the per-item and invoice-level totals from raw line
// inputs. It is a pure function: callers own writing the results back.
//
// Rounding is applied item-first: every per-item figure is rounded to 2dp and
// the aggregates are the rounded sums of those rounded values, so the invoice
// always reconciles line by line.
func ComputeTotals(items []ItemInput) ([]models.InvoiceItem, Totals, error) {
	if err := validateItems(items); err != nil {
		return nil, Totals{}, err
	}

	out := make([]models.InvoiceItem, len(items))
	var sumHT, sumDiscount, sumTVA, sumTTC float64

	for i, in := range items {
		gross := in.Quantity * in.UnitPrice
		discountAmt := Round2(gross * in.Discount / 100)
		lineHT := Round2(gross * (1 - in.Discount/100))
		lineTVA := Round2(lineHT * in.TVA / 100)
		lineTTC := Round2(lineHT + lineTVA)

		out[i] = models.InvoiceItem{
			Article:   in.ArticleCode,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Discount:  in.Discount,
			TVA:       in.TVA,
			TotalHT:   lineHT,
			TotalTTC:  lineTTC,
		}

		sumHT += lineHT
		sumDiscount += discountAmt
		sumTVA += lineTVA
		sumTTC += lineTTC
	}

	totals := Totals{
		SubTotalHT:    Round2(sumHT),
		TotalDiscount: Round2(sumDiscount),
		TotalTVA:      Round2(sumTVA),
		TotalTTC:      Round2(sumTTC),
	}
	return out, totals, nil
}

func validateItems(items []ItemInput) error {
	for i, in := range items {
		switch {
		case in.Quantity < 0:
			return models.ValidationError{Index: i, Field: "quantity", Msg: "must be non-negative"}
		case in.UnitPrice < 0:
			return models.ValidationError{Index: i, Field: "unitPrice", Msg: "must be non-negative"}
		case in.Discount < 0:
			return models.ValidationError{Index: i, Field: "discount", Msg: "must be non-negative"}
		case in.Discount > 100:
			return models.ValidationError{Index: i, Field: "discount", Msg: "must not exceed 100"}
		case in.TVA < 0:
			return models.ValidationError{Index: i, Field: "tva", Msg: "must be non-negative"}
		}
	}
	return nil
}
