package match

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bastiangx/fidelmatch/pkg/dictionary"
	"github.com/bastiangx/fidelmatch/pkg/translit"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var testQueries = []string{
	"a", "ab", "abe", "abeb", "abebe",
	"s", "sa", "sar", "sara", "sarah",
	"m", "ma", "mar", "mary", "maryam",
	"አማኑኤል", "ሳራ", "ዳዊት", "john", "tsegaye",
}

// A shared engine is hammered from many goroutines while the small cache keeps
// evicting. Results must not depend on interleaving.
func TestConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	settings := DefaultSettings()
	settings.CacheSize = 8
	e := New(dictionary.Default(), settings)

	want := make(map[string][]string, len(testQueries))
	for _, q := range testQueries {
		v, err := New(dictionary.Default(), DefaultSettings()).ExpandQuery(q)
		assert.NoError(t, err)
		want[q] = v
	}

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				q := testQueries[(w+i)%len(testQueries)]
				got, err := e.ExpandQuery(q)
				if err != nil {
					errs <- err
					return
				}
				if fmt.Sprint(got) != fmt.Sprint(want[q]) {
					errs <- fmt.Errorf("expand %q: got %v, want %v", q, got, want[q])
					return
				}
				if _, err := e.Matches("Amanuel Tsegaye", q, DefaultOptions()); err != nil {
					errs <- err
					return
				}
				if _, err := e.Transliterate(q, translit.Options{IncludePartialMatches: i%2 == 0, EnableCache: true}); err != nil {
					errs <- err
					return
				}
				if i%50 == 0 {
					e.ClearCache()
				}
			}
		}(w)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	assert.LessOrEqual(t, e.Stats()["cacheLen"], 8)
}
