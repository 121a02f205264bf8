package cgt

import (
	"fmt"
	"io"
	"iter"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/etnz/cgt/date"
	"github.com/shopspring/decimal"
)

// fieldCount is the number of fields of a transaction line:
// KIND DATE ASSET AMOUNT PRICE EXPENSES.
const fieldCount = 6

// decimalLiteral is the accepted syntax for amounts, prices and expenses.
// Exponents, NaN and the like are refused even though the decimal package reads some of them.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Parser turns transaction log lines into Transactions.
//
// It assigns ids in parse order, starting at 0. Ids keep increasing across
// calls on the same Parser and are never reused, even when a later line of a
// batch fails.
//
// The zero value is ready to use and reads prices in DefaultCurrency.
// A Parser is safe for concurrent use.
type Parser struct {
	mu       sync.Mutex
	nextID   int
	currency string
}

// Option configures a Parser.
type Option func(*Parser) error

// WithCurrency sets the ISO-4217 currency code of prices and expenses.
func WithCurrency(code string) Option {
	return func(p *Parser) error {
		if !knownCurrency(code) {
			return fmt.Errorf("unknown currency code %q", code)
		}
		p.currency = code
		return nil
	}
}

// NewParser returns a Parser configured with opts.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{currency: DefaultCurrency}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Decode reads r to the end and parses its content with ParseAll.
func (p *Parser) Decode(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return p.ParseAll(string(data))
}

// ParseAll parses every line of text, in order.
//
// Blank and comment lines are skipped. The first invalid line aborts the
// batch: ParseAll then returns no transactions at all and a *ParseError
// carrying that line and its line number.
func (p *Parser) ParseAll(text string) ([]Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var txs []Transaction
	for n, line := range lines(text) {
		tx, ok, err := p.parseLine(line)
		if err != nil {
			err.LineNumber = n
			return nil, err
		}
		if ok {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

// ParseLine parses a single log line.
//
// It returns ok == false and a nil error for blank lines and comments
// (lines starting with '#'). Failures are *ParseError values wrapping one
// of the Err* categories.
func (p *Parser) ParseLine(line string) (tx Transaction, ok bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, ok, perr := p.parseLine(line)
	if perr != nil {
		return Transaction{}, false, perr
	}
	return tx, ok, nil
}

// parseLine implements ParseLine, p.mu must be held.
func (p *Parser) parseLine(line string) (Transaction, bool, *ParseError) {
	if line == "" || strings.HasPrefix(line, "#") {
		return Transaction{}, false, nil
	}

	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return Transaction{}, false, lineError(ErrIncorrectNumberOfFields, line,
			fmt.Errorf("got %d fields want %d", len(fields), fieldCount))
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return Transaction{}, false, lineError(ErrInvalidKind, line, err)
	}

	on, err := date.Parse(fields[1])
	if err != nil {
		return Transaction{}, false, lineError(ErrInvalidDate, line, err)
	}

	asset := fields[2]

	amount, err := parseDecimal(fields[3])
	if err != nil {
		return Transaction{}, false, lineError(ErrInvalidAmount, line, err)
	}

	price, err := parseDecimal(fields[4])
	if err != nil {
		return Transaction{}, false, lineError(ErrInvalidPrice, line, err)
	}

	expenses, err := parseDecimal(fields[5])
	if err != nil {
		return Transaction{}, false, lineError(ErrInvalidExpenses, line, err)
	}

	cur := p.currency
	if cur == "" {
		cur = DefaultCurrency
	}

	tx := Transaction{
		id:       p.nextID,
		kind:     kind,
		on:       on,
		asset:    asset,
		amount:   Q(amount),
		price:    M(price, cur),
		expenses: M(expenses, cur),
	}
	p.nextID++
	return tx, true, nil
}

// parseDecimal reads an exact decimal literal such as 10.50, -3 or .5.
func parseDecimal(str string) (decimal.Decimal, error) {
	if !decimalLiteral.MatchString(str) {
		return decimal.Decimal{}, fmt.Errorf("%q is not a decimal number", str)
	}
	return decimal.NewFromString(str)
}

// lines iterates over the lines of text with their 1-based line number.
// Any Unicode newline ends a line, and CRLF counts as a single one.
func lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n, start := 1, 0
		var prev rune
		for i, r := range text {
			switch {
			case r == '\n' && prev == '\r':
				start = i + 1
			case isNewline(r):
				if !yield(n, text[start:i]) {
					return
				}
				n++
				start = i + utf8.RuneLen(r)
			}
			prev = r
		}
		if start < len(text) {
			yield(n, text[start:])
		}
	}
}

func isNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
