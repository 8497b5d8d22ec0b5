package params

import (
	"fmt"
	"strings"
)

// ValString returns the parameter with the given key, or an empty string if it doesn't exists.
func ValString(k string, p map[string]string) (v string) {

	v, _ = p[k]
	return
}

// ValOneOf returns the parameter with the given key if it is one of allowed, d if it is
// not present.
func ValOneOf(k, d string, allowed []string, p map[string]string) (v string, err error) {

	s, ok := p[k]
	if !ok {
		v = d
		return
	}

	for _, a := range allowed {
		if s == a {
			v = s
			return
		}
	}

	err = fmt.Errorf("%s must be %s", k, strings.Join(allowed, " | "))
	return
}

// Flatten keeps the first value of every key, dropping keys with no values.
func Flatten(raw map[string][]string) map[string]string {

	flat := map[string]string{}
	for k, v := range raw {
		if len(v) == 0 {
			continue
		}
		flat[k] = v[0]
	}

	return flat
}

// JoinLower lower-cases every key and joins repeated values with a comma, the way HTTP API
// gateways hand headers to a function. Keys differing only by case are merged.
func JoinLower(raw map[string][]string) map[string]string {

	joined := map[string]string{}
	for k, v := range raw {
		if len(v) == 0 {
			continue
		}
		lk := strings.ToLower(k)
		val := strings.Join(v, ",")
		if prev, ok := joined[lk]; ok {
			val = prev + "," + val
		}
		joined[lk] = val
	}

	return joined
}
