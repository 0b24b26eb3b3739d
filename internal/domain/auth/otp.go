package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/princessangelsalon/salon-api/internal/models"
)

// OtpTTL is the window an issued code stays valid. Expiry is computed from
// the record's creation timestamp at verification time, never swept.
const OtpTTL = 5 * time.Minute

// GenerateCode returns a 4-digit code uniform in [1000, 9999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(1000+n.Int64(), 10), nil
}

// Expired reports whether a record's code is past its window at the given
// instant. The boundary itself is still valid.
func Expired(rec *models.OtpRecord, now time.Time) bool {
	return now.Sub(rec.CreatedAt) > OtpTTL
}
