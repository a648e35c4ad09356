package schedule

import "github.com/shopspring/decimal"

// =============================================================================
// AMOUNT - Quantity of leave time
// =============================================================================

// Amount is a quantity of leave time with a unit. decimal.Decimal keeps
// totals exact when summaries are later extended to fractional units.
type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitHours Unit = "hours"
	UnitDays  Unit = "days"
)

func NewAmount(value int, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Unit: unit}
}

func (a Amount) Zero() Amount        { return Amount{Value: decimal.Zero, Unit: a.Unit} }
func (a Amount) Add(b Amount) Amount { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) IsZero() bool        { return a.Value.IsZero() }

func (a Amount) String() string { return a.Value.String() + " " + string(a.Unit) }
