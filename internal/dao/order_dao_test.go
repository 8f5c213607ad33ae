package dao

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	ordermodel "bloomfundr-api/internal/model/order"
)

func TestScanOrderTables_SkipsMissingShards(t *testing.T) {
	rows := map[string][]ordermodel.CampaignOrder{
		"bf_order_202608_p0": {{OrderID: 1, Subtotal: decimal.NewFromInt(100)}},
		"bf_order_202608_p1": {{OrderID: 2, Subtotal: decimal.NewFromInt(50)}},
	}
	tables := []string{"bf_order_202607_p0", "bf_order_202608_p0", "bf_order_202608_p1"}
	got, err := scanOrderTables(tables, func(table string) ([]ordermodel.CampaignOrder, error) {
		batch, ok := rows[table]
		if !ok {
			return nil, &mysql.MySQLError{Number: 1146, Message: "Table '" + table + "' doesn't exist"}
		}
		return batch, nil
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 orders across existing shards, got %d", len(got))
	}
}

func TestScanOrderTables_AbortsOnScanError(t *testing.T) {
	scanErr := errors.New("read tcp: connection reset by peer")
	tables := []string{"bf_order_202608_p0", "bf_order_202608_p1", "bf_order_202608_p2"}
	got, err := scanOrderTables(tables, func(table string) ([]ordermodel.CampaignOrder, error) {
		if table == "bf_order_202608_p1" {
			return nil, scanErr
		}
		return []ordermodel.CampaignOrder{{OrderID: 1, PayStatus: ordermodel.PayStatusPaid}}, nil
	})
	if !errors.Is(err, scanErr) {
		t.Fatalf("expected scan error to propagate, got %v", err)
	}
	if got != nil {
		t.Errorf("partial order set must not be returned, got %d rows", len(got))
	}
}

func TestIsMissingTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"missing table", &mysql.MySQLError{Number: 1146, Message: "Table 'bf_order_202601_p0' doesn't exist"}, true},
		{"wrapped missing table", fmt.Errorf("scan: %w", &mysql.MySQLError{Number: 1146}), true},
		{"lock wait timeout", &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}, false},
		{"connection reset", errors.New("connection reset by peer"), false},
		{"nil", nil, false},
	}
	for _, c := range cases {
		if got := isMissingTable(c.err); got != c.want {
			t.Errorf("%s: isMissingTable = %v, want %v", c.name, got, c.want)
		}
	}
}
