package stage

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

var ErrSymbolExists = errors.New("stage exists")

func Register(s Symbol) error {
	key := s.String()
	if key == "" || strings.ContainsAny(key, " \t\n|'\"") {
		return fmt.Errorf("stage name %q must not contain pipeline syntax", key)
	}
	mu.Lock()
	defer mu.Unlock()
	_, present := d[key]
	if present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[key] = s
	return nil
}

func init() {
	Register(Set())
	Register(Get())
	Register(Where())
	Register(Patch())
	Register(Tag())
}

func Lookup(s string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, s := range d {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].String() < res[j].String()
	})
	return res
}
