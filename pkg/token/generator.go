// -----------------------------------------------------------------------------
// Token Generation Utility
// -----------------------------------------------------------------------------
// This package provides cryptographically secure token generation utilities
// and the external reference identifiers sent to the PIX gateway.
//
// These helpers eliminate duplicate token generation code found in:
//   - Cleanup cron secrets (CleanupController)
//   - Webhook replay nonces
//   - External PIX charge references (PaymentService / WebhookService)
//
// All random tokens are generated using crypto/rand for cryptographic
// security.
// -----------------------------------------------------------------------------

package token

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ExternalIDPrefix is the prefix of every external reference sent to the
// PIX gateway as metadata. The raffle identifier is embedded so that the
// webhook handler can recover it without an extra lookup.
const ExternalIDPrefix = "rifa"

// GenerateSecureToken generates a cryptographically secure random token.
//
// Parameters:
//   - length: The length of the random bytes to generate (default: 32)
//
// Returns:
//   - string: Base64 URL-encoded token
//   - error: Error if random number generation fails
//
// The token is base64 URL-encoded, making it safe for use in URLs.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		length = 32 // Default to 32 bytes
	}

	bytes := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		// Fallback to time-based token if crypto/rand fails
		// This should never happen in practice
		return fallbackToken(length), err
	}

	return base64.URLEncoding.EncodeToString(bytes), nil
}

// MustGenerateSecureToken is like GenerateSecureToken but panics on error.
//
// Use this in initialization code where errors should be fatal.
func MustGenerateSecureToken(length int) string {
	token, err := GenerateSecureToken(length)
	if err != nil {
		panic(fmt.Sprintf("failed to generate secure token: %v", err))
	}
	return token
}

// GenerateSecureTokenHex generates a cryptographically secure random token
// encoded as hexadecimal instead of base64.
func GenerateSecureTokenHex(length int) (string, error) {
	if length <= 0 {
		length = 32
	}

	bytes := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return fallbackToken(length), err
	}

	return hex.EncodeToString(bytes), nil
}

// BuildExternalID builds the external reference sent to the PIX gateway
// for a charge belonging to the given raffle.
//
// Format: rifa_<raffleId>_<unixMillis>
//
// Example:
//
//	extID := token.BuildExternalID(42)
//	// "rifa_42_1717171717171"
func BuildExternalID(raffleID int64) string {
	return fmt.Sprintf("%s_%d_%d", ExternalIDPrefix, raffleID, time.Now().UnixMilli())
}

// ParseExternalID extracts the raffle identifier from an external reference
// previously built with BuildExternalID.
//
// Returns an error when the reference does not follow the expected format.
// Webhook payloads carry this value back in metadata, so the parser must
// tolerate nothing: a malformed reference means the charge was not created
// by this system.
func ParseExternalID(externalID string) (int64, error) {
	parts := strings.Split(externalID, "_")
	if len(parts) != 3 || parts[0] != ExternalIDPrefix {
		return 0, fmt.Errorf("geçersiz harici referans formatı: %q", externalID)
	}

	raffleID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || raffleID <= 0 {
		return 0, fmt.Errorf("geçersiz harici referans formatı: %q", externalID)
	}

	if _, err := strconv.ParseInt(parts[2], 10, 64); err != nil {
		return 0, fmt.Errorf("geçersiz harici referans formatı: %q", externalID)
	}

	return raffleID, nil
}

// fallbackToken generates a weak time-based token as last resort.
// Only used if crypto/rand fails, which should never happen.
func fallbackToken(length int) string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("fallback_%d_%d", timestamp, length)
}
