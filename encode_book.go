package sukuk

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// RecordType discriminates the lines of a book file.
type RecordType string

const (
	RecordBook       RecordType = "book"
	RecordPlatform   RecordType = "platform"
	RecordInvestment RecordType = "investment"
	RecordCashflow   RecordType = "cashflow"
	RecordCash       RecordType = "cash"
)

// ErrUnknownRecord is returned when a book line has an unsupported "record" field.
var ErrUnknownRecord = errors.New("unknown record")

// DecodeBook decodes a book from a stream of JSONL data: one record per line,
// identified by its "record" field. Empty lines are skipped.
//
//	{"record":"book","currency":"SAR"}
//	{"record":"platform","id":"p1","name":"Sukuk Co"}
//	{"record":"investment","id":"i1","platformId":"p1","faceValue":"100000",...}
func DecodeBook(r io.Reader) (*Book, error) {
	book := &Book{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue
		}

		var identifier struct {
			Record   RecordType `json:"record"`
			Currency string     `json:"currency"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record in %q: %w", line, string(lineBytes), err)
		}

		var err error
		switch identifier.Record {
		case RecordBook:
			book.Currency = identifier.Currency
		case RecordPlatform:
			var p Platform
			if err = json.Unmarshal(lineBytes, &p); err == nil {
				book.Platforms = append(book.Platforms, p)
			}
		case RecordInvestment:
			var inv Investment
			if err = json.Unmarshal(lineBytes, &inv); err == nil {
				book.Investments = append(book.Investments, inv)
			}
		case RecordCashflow:
			var c Cashflow
			if err = json.Unmarshal(lineBytes, &c); err == nil {
				book.Cashflows = append(book.Cashflows, c)
			}
		case RecordCash:
			var tx CashTransaction
			if err = json.Unmarshal(lineBytes, &tx); err == nil {
				book.Cash = append(book.Cash, tx)
			}
		default:
			err = fmt.Errorf("%w %q", ErrUnknownRecord, identifier.Record)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading book: %w", err)
	}
	return book, nil
}

// EncodeBook writes the book as JSONL, in the order DecodeBook reads it back:
// header, platforms, investments, cashflows, then cash transactions.
func EncodeBook(w io.Writer, b *Book) error {
	bw := bufio.NewWriter(w)
	write := func(record RecordType, v any) error {
		line, err := marshalRecord(record, v)
		if err != nil {
			return err
		}
		bw.Write(line)
		bw.WriteByte('\n')
		return nil
	}

	if b.Currency != "" {
		if err := write(RecordBook, struct {
			Currency string `json:"currency"`
		}{b.Currency}); err != nil {
			return err
		}
	}
	for _, p := range b.Platforms {
		if err := write(RecordPlatform, p); err != nil {
			return err
		}
	}
	for _, inv := range b.Investments {
		if err := write(RecordInvestment, inv); err != nil {
			return err
		}
	}
	for _, c := range b.Cashflows {
		if err := write(RecordCashflow, c); err != nil {
			return err
		}
	}
	for _, tx := range b.Cash {
		if err := write(RecordCash, tx); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// marshalRecord encodes v as one book line, its "record" discriminator first.
// v must encode to a JSON object.
func marshalRecord(record RecordType, v any) ([]byte, error) {
	fields, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s record: %w", record, err)
	}
	fields = bytes.TrimSpace(fields)
	if len(fields) < 2 || fields[0] != '{' || fields[len(fields)-1] != '}' {
		return nil, fmt.Errorf("encoding %s record: %s is not an object", record, fields)
	}
	line := fmt.Appendf(nil, `{"record":%q`, record)
	if body := fields[1 : len(fields)-1]; len(body) > 0 {
		line = append(line, ',')
		line = append(line, body...)
	}
	return append(line, '}'), nil
}
