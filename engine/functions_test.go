package engine

import (
	"database/sql"
	"math"
	"strings"
	"testing"

	"github.com/viant/victor/vector"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRegisterVectorFunctions_Idempotent(t *testing.T) {
	if err := RegisterVectorFunctions(); err != nil {
		t.Fatalf("RegisterVectorFunctions failed: %v", err)
	}
	if err := RegisterVectorFunctions(); err != nil {
		t.Fatalf("second RegisterVectorFunctions failed: %v", err)
	}
}

func TestVectorBlobFunctions(t *testing.T) {
	db := openTestDB(t)

	a := vector.Encode(vector.New(1, 2, 3))
	b := vector.Encode(vector.New(4, 5, 6, 30))
	c := vector.Encode(vector.New(3, 2))

	testCases := []struct {
		description string
		query       string
		args        []interface{}
		want        vector.Vector
	}{
		{description: "add", query: `SELECT vec_add(?, ?)`, args: []interface{}{a, b}, want: vector.New(5, 7, 9, 30)},
		{description: "sub", query: `SELECT vec_sub(?, ?)`, args: []interface{}{a, b}, want: vector.New(-3, -3, -3, -30)},
		{description: "scale real", query: `SELECT vec_scale(?, ?)`, args: []interface{}{a, 2.0}, want: vector.New(2, 4, 6)},
		{description: "scale integer", query: `SELECT vec_scale(?, 2)`, args: []interface{}{a}, want: vector.New(2, 4, 6)},
		{description: "cross", query: `SELECT vec_cross(?, ?)`, args: []interface{}{a, c}, want: vector.New(-6, 9, -4)},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var blob []byte
			if err := db.QueryRow(tc.query, tc.args...).Scan(&blob); err != nil {
				t.Fatalf("%s query failed: %v", tc.description, err)
			}
			got, err := vector.Decode(blob)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("%s = [%v], want [%v]", tc.description, got, tc.want)
			}
		})
	}
}

func TestVectorScalarFunctions(t *testing.T) {
	db := openTestDB(t)

	x := vector.Encode(vector.New(1, 0, 0))
	negX := vector.Encode(vector.New(-1, 0, 0))
	threeFour := vector.Encode(vector.New(3, 4))
	long := vector.Encode(vector.New(1, 2, 3, 20))
	short := vector.Encode(vector.New(1, 2))

	var got float64
	if err := db.QueryRow(`SELECT vec_dot(?, ?)`, long, short).Scan(&got); err != nil {
		t.Fatalf("vec_dot query failed: %v", err)
	}
	if got != 5 {
		t.Fatalf("vec_dot = %v, want 5", got)
	}
	if err := db.QueryRow(`SELECT vec_norm(?)`, threeFour).Scan(&got); err != nil {
		t.Fatalf("vec_norm query failed: %v", err)
	}
	if math.Abs(got-5) > 1e-5 {
		t.Fatalf("vec_norm = %v, want 5", got)
	}
	if err := db.QueryRow(`SELECT vec_angle(?, ?)`, x, negX).Scan(&got); err != nil {
		t.Fatalf("vec_angle query failed: %v", err)
	}
	if math.Abs(got-math.Pi) > 1e-5 {
		t.Fatalf("vec_angle = %v, want π", got)
	}

	var text string
	if err := db.QueryRow(`SELECT vec_text(?)`, long).Scan(&text); err != nil {
		t.Fatalf("vec_text query failed: %v", err)
	}
	if text != "1, 2, 3, 20" {
		t.Fatalf("vec_text = %q, want %q", text, "1, 2, 3, 20")
	}
}

func TestVectorFunctions_NullAndErrors(t *testing.T) {
	db := openTestDB(t)

	var out sql.NullFloat64
	if err := db.QueryRow(`SELECT vec_dot(NULL, ?)`, vector.Encode(vector.New(1))).Scan(&out); err != nil {
		t.Fatalf("vec_dot(NULL) query failed: %v", err)
	}
	if out.Valid {
		t.Fatalf("vec_dot(NULL, x) = %v, want NULL", out.Float64)
	}

	four := vector.Encode(vector.New(1, 2, 3, 4))
	var blob []byte
	err := db.QueryRow(`SELECT vec_cross(?, ?)`, four, four).Scan(&blob)
	if err == nil || !strings.Contains(err.Error(), "dimension exceeds 3") {
		t.Fatalf("expected dimension error from vec_cross, got %v", err)
	}

	zero := vector.Encode(vector.New(0, 0))
	var angle float64
	err = db.QueryRow(`SELECT vec_angle(?, ?)`, zero, zero).Scan(&angle)
	if err == nil || !strings.Contains(err.Error(), "zero norm") {
		t.Fatalf("expected degenerate error from vec_angle, got %v", err)
	}

	if err := db.QueryRow(`SELECT vec_norm('text')`).Scan(&angle); err == nil {
		t.Fatal("expected type error from vec_norm on TEXT")
	}
}
