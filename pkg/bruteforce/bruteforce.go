// Package bruteforce recovers S-DES keys from a known plaintext/ciphertext
// pair by trying the entire 10-bit keyspace on a pool of goroutines.
//
// Because 1024 keys map into only 256 possible ciphertexts for a given
// plaintext, several keys usually match. A single match is not proof that it
// is the key that was used, which is why FindAll exists.
package bruteforce

import (
	"context"
	"io"
	"time"

	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/sirupsen/logrus"
)

// BruteForceAll returns every key that encrypts plaintext to ciphertext,
// searching for at most timeout. timedOut is true when the keyspace was not
// exhausted in time, in which case keys may be incomplete.
func BruteForceAll(plaintext, ciphertext sdes.Bits, timeout time.Duration) (keys []sdes.Bits, timedOut bool, err error) {
	searcher := NewSearcher(discardLog(), WithTimeout(timeout))
	result, err := searcher.FindAll(context.Background(), plaintext, ciphertext)
	if err != nil && !sdes.HasErrorCode(err, sdes.SearchTimedOut) {
		return nil, false, err
	}
	return result.Keys, result.TimedOut, err
}

func discardLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return logrus.NewEntry(log)
}
