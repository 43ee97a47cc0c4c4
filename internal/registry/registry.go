package registry

import (
	_ "embed"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed lotteries.yaml
var defaultCatalog []byte

var (
	ErrDuplicateSlug = errors.New("slug duplicado no catálogo")
	ErrNoSource      = errors.New("loteria sem fonte de resultados ou jackpot")
)

type Provider string

const (
	ProviderGuidi      Provider = "guidi"
	ProviderNYOpenData Provider = "nyopendata"
	ProviderLottoland  Provider = "lottoland"
)

// UpstreamSource identifica a loteria no provedor externo
type UpstreamSource struct {
	Provider   Provider `yaml:"provider" validate:"required,oneof=guidi nyopendata lottoland"`
	UpstreamID string   `yaml:"upstream_id" validate:"required"`
}

type Entry struct {
	Slug            string          `yaml:"slug" validate:"required"`
	Name            string          `yaml:"name" validate:"required"`
	Country         string          `yaml:"country"`
	Currency        string          `yaml:"currency" validate:"required,len=3"`
	Symbol          string          `yaml:"symbol" validate:"required"`
	Results         *UpstreamSource `yaml:"results"`
	Jackpot         *UpstreamSource `yaml:"jackpot"`
	ExtrasFields    []string        `yaml:"extras_fields"`
	FallbackJackpot string          `yaml:"fallback_jackpot"`
	DrawDays        []string        `yaml:"draw_days"`
	DrawTime        string          `yaml:"draw_time"`
	Timezone        string          `yaml:"timezone"`
}

type catalog struct {
	Lotteries []Entry `yaml:"lotteries" validate:"required,dive"`
}

// Registry é o catálogo imutável de loterias indexado por slug
type Registry struct {
	entries []Entry
	bySlug  map[string]int
}

func New(entries []Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		bySlug:  make(map[string]int, len(entries)),
	}

	for _, entry := range entries {
		if _, exists := r.bySlug[entry.Slug]; exists {
			return nil, errors.Wrap(ErrDuplicateSlug, entry.Slug)
		}
		if entry.Results == nil && entry.Jackpot == nil {
			return nil, errors.Wrap(ErrNoSource, entry.Slug)
		}

		r.bySlug[entry.Slug] = len(r.entries)
		r.entries = append(r.entries, entry)
	}

	return r, nil
}

// Load decodifica e valida um catálogo em YAML
func Load(data []byte) (*Registry, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar catálogo de loterias")
	}

	if err := validateCatalog(c); err != nil {
		return nil, err
	}

	return New(c.Lotteries)
}

func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler catálogo %s", path)
	}
	return Load(data)
}

// Default carrega o catálogo embutido no binário
func Default() (*Registry, error) {
	return Load(defaultCatalog)
}

func (r *Registry) Lookup(slug string) (Entry, bool) {
	idx, ok := r.bySlug[slug]
	if !ok {
		return Entry{}, false
	}
	return r.entries[idx], true
}

func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ResultEntries retorna as loterias que possuem fonte de resultados
func (r *Registry) ResultEntries() []Entry {
	return r.filter(func(e Entry) bool { return e.Results != nil })
}

// JackpotEntries retorna as loterias que possuem fonte de jackpot
func (r *Registry) JackpotEntries() []Entry {
	return r.filter(func(e Entry) bool { return e.Jackpot != nil })
}

func (r *Registry) ByProvider(provider Provider) []Entry {
	return r.filter(func(e Entry) bool {
		return (e.Results != nil && e.Results.Provider == provider) ||
			(e.Jackpot != nil && e.Jackpot.Provider == provider)
	})
}

func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) filter(keep func(Entry) bool) []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func validateCatalog(c catalog) error {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return errors.Wrap(err, "erro ao registrar traduções do validador")
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "erro ao validar catálogo de loterias")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fe.Translate(trans))
	}
	return fmt.Errorf("catálogo de loterias inválido: %s", strings.Join(messages, "; "))
}
