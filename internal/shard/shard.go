// Package shard maps store identifiers onto order-group partition tables.
package shard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StoresPerPartition is the number of consecutive store ids sharing one partition.
const StoresPerPartition = 1000

const partitionPrefix = "order_group_"

// ErrInvalidStoreID is returned when a store id is not a positive integer.
var ErrInvalidStoreID = errors.New("shard: invalid store id")

// Partition returns the partition table for a numeric store id.
// Store 1..1000 lands in order_group_001, 1001..2000 in order_group_002 and so on.
func Partition(storeID int) (string, error) {
	if storeID < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidStoreID, storeID)
	}
	idx := (storeID-1)/StoresPerPartition + 1
	return fmt.Sprintf("%s%03d", partitionPrefix, idx), nil
}

// Resolve parses a store id as received from callers and returns its partition.
func Resolve(storeID string) (string, error) {
	id, err := strconv.Atoi(strings.TrimSpace(storeID))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStoreID, storeID)
	}
	return Partition(id)
}

// IsPartition reports whether name has the shape produced by Partition.
func IsPartition(name string) bool {
	digits, ok := strings.CutPrefix(name, partitionPrefix)
	if !ok || len(digits) < 3 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
