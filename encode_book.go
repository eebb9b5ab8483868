package sellerbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// The book file is JSONL: one JSON object per line, identified by a
// "record" property. Assets come first, then periods, then transactions,
// so a file always lists a reference before any line that uses it.
// The format is human readable and easy to merge.

// recordType identifies the kind of a book file line.
type recordType string

const (
	recAsset  recordType = "asset"
	recPeriod recordType = "period"
	recTx     recordType = "tx"
)

// EncodeBook writes the whole book to w in the JSONL book format, in a
// canonical order: assets, periods, transactions, each sorted by id.
func EncodeBook(w io.Writer, b *Book) error {
	for _, a := range b.Assets() {
		if err := encodeLine(w, encodeAsset(a)); err != nil {
			return err
		}
	}
	for _, p := range b.Periods() {
		if err := encodeLine(w, encodePeriod(p)); err != nil {
			return err
		}
	}
	for _, t := range b.Transactions() {
		if err := encodeLine(w, encodeTransaction(t)); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(w io.Writer, ow *jsonObjectWriter) error {
	data, err := ow.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func encodeAsset(a Asset) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Append("record", recAsset)
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Optional("description", a.Description)
	w.Append("type", a.Type)
	w.Append("stock", a.Stock)
	w.Optional("costBasis", a.CostBasis)
	return &w
}

func encodePeriod(p Period) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Append("record", recPeriod)
	w.Append("id", p.ID)
	w.Append("month", p.Month)
	w.Optional("goal", p.Goal)
	return &w
}

func encodeTransaction(t Transaction) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Append("record", recTx)
	w.Append("id", t.ID)
	w.Append("period", t.PeriodID)
	w.Append("asset", t.AssetID)
	w.Append("amount", t.Amount)
	w.Append("unitPrice", t.UnitPrice)
	return &w
}

// DecodeBook reads a book back from a stream of JSONL data, decoding
// each line into the record it represents.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // skip empty lines
		}

		var identifier struct {
			Record recordType `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recAsset:
			var temp struct {
				ID          ID        `json:"id"`
				Name        string    `json:"name"`
				Description string    `json:"description"`
				Type        AssetType `json:"type"`
				Stock       int       `json:"stock"`
				CostBasis   Money     `json:"costBasis"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, fmt.Errorf("could not parse asset line %q: %w", string(line), err)
			}
			book.SaveAsset(Asset{
				ID:          temp.ID,
				Name:        temp.Name,
				Description: temp.Description,
				Type:        temp.Type,
				Stock:       temp.Stock,
				CostBasis:   temp.CostBasis,
			})

		case recPeriod:
			var temp struct {
				ID    ID    `json:"id"`
				Month Month `json:"month"`
				Goal  Money `json:"goal"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, fmt.Errorf("could not parse period line %q: %w", string(line), err)
			}
			if _, err := book.SavePeriod(Period{ID: temp.ID, Month: temp.Month, Goal: temp.Goal}); err != nil {
				return nil, fmt.Errorf("invalid period line %q: %w", string(line), err)
			}

		case recTx:
			var temp struct {
				ID        ID    `json:"id"`
				Period    ID    `json:"period"`
				Asset     ID    `json:"asset"`
				Amount    int   `json:"amount"`
				UnitPrice Money `json:"unitPrice"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, fmt.Errorf("could not parse transaction line %q: %w", string(line), err)
			}
			tx := Transaction{
				ID:        temp.ID,
				PeriodID:  temp.Period,
				AssetID:   temp.Asset,
				Amount:    temp.Amount,
				UnitPrice: temp.UnitPrice,
			}
			if _, err := book.SaveTransaction(tx); err != nil {
				return nil, fmt.Errorf("invalid transaction line %q: %w", string(line), err)
			}

		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading book: %w", err)
	}
	return book, nil
}
