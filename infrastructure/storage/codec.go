package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"tienda-live/errors"

	"github.com/dgraph-io/badger/v4"
)

// getJSON loads key into v. A missing key returns notFound unchanged so that
// callers can match it with errors.Is.
func getJSON(txn *badger.Txn, key string, v any, notFound error) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return notFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, v); err != nil {
			return fmt.Errorf("failed to decode %s: %w", key, err)
		}
		return nil
	})
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

func exists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

var (
	keyEscaper   = strings.NewReplacer("%", "%25", ":", "%3A")
	keyUnescaper = strings.NewReplacer("%3A", ":", "%25", "%")
)

// keyPart escapes the separator in a caller supplied key segment, so that
// store "1" never scans the keys of store "1:x".
func keyPart(s string) string { return keyEscaper.Replace(s) }

func fromKeyPart(s string) string { return keyUnescaper.Replace(s) }

// keysWithPrefix returns the keys under prefix without fetching values.
func keysWithPrefix(txn *badger.Txn, prefix string, limit int) []string {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	var keys []string
	for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
		keys = append(keys, string(it.Item().KeyCopy(nil)))
		if limit > 0 && len(keys) >= limit {
			break
		}
	}
	return keys
}

func countPrefix(txn *badger.Txn, prefix string) int {
	return len(keysWithPrefix(txn, prefix, 0))
}

// persistence wraps a storage failure, leaving domain sentinels untouched.
func persistence(err error, domainErrs ...error) error {
	if err == nil {
		return nil
	}
	for _, d := range domainErrs {
		if errors.Is(err, d) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
}
