// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer between min and max.
func IntBetween(min, max int) int32 {
	return int32(min) + int32(Intn(max-min))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// Actor generates a random acting identity.
func Actor() string {
	return "user-" + String(8)
}

// Vendor generates a random vendor name.
func Vendor() string {
	name := String(8)
	return strings.ToUpper(name[:1]) + name[1:] + " Supply Co"
}

// AccountNumber generates a random four digit account number as a string.
func AccountNumber() string {
	return fmt.Sprintf("%04d", 1000+Intn(9000))
}

// EntityID generates a random entity identifier.
func EntityID() int32 {
	return IntBetween(1, 1_000)
}

// MoneyBetween generates a random two decimal amount between min and max.
func MoneyBetween(min, max float64) decimal.Decimal {
	amount := min + Float64()*(max-min)
	return decimal.NewFromFloat(amount).Round(2)
}
