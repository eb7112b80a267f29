package coldwallet

import (
	"fmt"
	"strings"
)

// ParseRecords converts raw input lines into wallet records, preserving
// input order. Each line is "address:privateKey"; segments after a second
// colon are ignored. Blank lines are skipped. A non-blank line without a
// colon fails the whole parse: silently dropping a record from a paper
// wallet sheet is worse than aborting.
func ParseRecords(lines []string) ([]WalletRecord, error) {
	records := make([]WalletRecord, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseLine splits one record line into its address and private-key fields.
func parseLine(line string) (WalletRecord, error) {
	addr, rest, found := strings.Cut(line, ":")
	if !found {
		return WalletRecord{}, ErrMalformedRecord
	}

	// Drop any segments after the private key.
	key, _, _ := strings.Cut(rest, ":")

	rec := WalletRecord{
		Address:    strings.TrimSpace(addr),
		PrivateKey: strings.TrimSpace(key),
	}
	if rec.Address == "" {
		return WalletRecord{}, ErrEmptyAddress
	}
	return rec, nil
}
