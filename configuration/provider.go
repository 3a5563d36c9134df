package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// lowerPosflag implements a pflag command line provider with lower-cased keys.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a commandline flags provider that returns a nested
// map[string]interface{} where the nesting hierarchy of keys is defined by delim.
//
// Flags that were not set on the command line only contribute their default value if the key
// does not exist in ko yet (e.g. because it was loaded from a config file).
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && p.ko != nil && p.ko.Exists(key) {
			return
		}

		var v interface{}
		switch f.Value.Type() {
		case "int":
			i, _ := p.flagset.GetInt(f.Name)
			v = int64(i)
		case "bool":
			v, _ = p.flagset.GetBool(f.Name)
		case "stringSlice":
			v, _ = p.flagset.GetStringSlice(f.Name)
		case "stringArray":
			v, _ = p.flagset.GetStringArray(f.Name)
		default:
			v = f.Value.String()
		}

		mp[key] = v
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, errors.New("pflag provider does not support this method")
}

// Watch is not supported.
func (p *lowerPosflag) Watch(cb func(event interface{}, err error)) error {
	return errors.New("pflag provider does not support this method")
}
