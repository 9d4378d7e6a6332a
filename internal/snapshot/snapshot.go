// Package snapshot persists parameter sets together with a rendered image
// of the board they produced.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"colorlife/internal/render"
	"colorlife/internal/sims/colorlife"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNotFound is returned when no save exists for an id.
	ErrNotFound = errors.New("snapshot not found")
	// ErrInvalidID rejects ids that are empty or would escape the store.
	ErrInvalidID = errors.New("invalid snapshot id")
	// ErrEmpty is returned by a Gallery over a store without saves.
	ErrEmpty = errors.New("no snapshots saved")
)

// Set is one saved parameter set.
type Set struct {
	ID           string    `toml:"id"`
	Saved        time.Time `toml:"saved"`
	Scale        float64   `toml:"scale"`
	MutateMin    float64   `toml:"mutate_min"`
	MutateMax    float64   `toml:"mutate_max"`
	SpeedMS      int       `toml:"speed"`
	SeedDensity  float64   `toml:"seed_density"`
	DropoffSteps int       `toml:"dropoff_steps"`
	DropoffMin   float64   `toml:"dropoff_min"`
	DropoffMax   float64   `toml:"dropoff_max"`
	StepsPerTick int       `toml:"steps_per_tick"`
	Tessellation string    `toml:"tessellation"`
}

// Capture builds a Set from the running configuration.
func Capture(p colorlife.Params, fade render.Fade, tess string, scale float64, speed time.Duration) Set {
	return Set{
		Scale:        scale,
		MutateMin:    p.MutateMin,
		MutateMax:    p.MutateMax,
		SpeedMS:      int(speed / time.Millisecond),
		SeedDensity:  p.SeedDensity,
		DropoffSteps: fade.Steps,
		DropoffMin:   fade.MinLightness,
		DropoffMax:   fade.MaxLightness,
		StepsPerTick: p.StepsPerTick,
		Tessellation: tess,
	}
}

// Speed returns the saved tick interval.
func (s Set) Speed() time.Duration { return time.Duration(s.SpeedMS) * time.Millisecond }

// Apply overlays the saved engine parameters onto p and returns them with
// the saved fade. The stall threshold is not saved and keeps p's value.
func (s Set) Apply(p colorlife.Params) (colorlife.Params, render.Fade, error) {
	p.SeedDensity = s.SeedDensity
	p.MutateMin = s.MutateMin
	p.MutateMax = s.MutateMax
	p.StepsPerTick = s.StepsPerTick
	if err := p.Validate(); err != nil {
		return colorlife.Params{}, render.Fade{}, fmt.Errorf("snapshot %s: %w", s.ID, err)
	}
	fade := render.Fade{Steps: s.DropoffSteps, MinLightness: s.DropoffMin, MaxLightness: s.DropoffMax}
	return p, fade, nil
}

// Restore applies the set to a running world and its fade, then reseeds
// the world with seed so the saved density takes effect. Nothing changes
// when the set is invalid.
func (s Set) Restore(world *colorlife.World, fade *render.Fade, seed int64) error {
	p, f, err := s.Apply(world.Params())
	if err != nil {
		return err
	}
	if err := world.SetParams(p); err != nil {
		return err
	}
	*fade = f
	world.Reset(seed)
	return nil
}

// Store keeps saves as <id>.toml and <id>.png pairs in a directory.
type Store struct {
	dir string
	now func() time.Time
}

// Open returns a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Dir returns the directory backing the store.
func (st *Store) Dir() string { return st.dir }

// Save assigns set a fresh id, writes it alongside img and returns the
// stored set.
func (st *Store) Save(set Set, img image.Image) (Set, error) {
	set.ID = newID()
	set.Saved = st.now().UTC().Truncate(time.Second)

	if err := st.writeFile(set.ID+".toml", func(f *os.File) error {
		return toml.NewEncoder(f).Encode(set)
	}); err != nil {
		return Set{}, err
	}
	if img != nil {
		if err := st.writeFile(set.ID+".png", func(f *os.File) error {
			return png.Encode(f, img)
		}); err != nil {
			return Set{}, err
		}
	}
	return set, nil
}

// List returns every saved set ordered by id.
func (st *Store) List() ([]Set, error) {
	paths, err := filepath.Glob(filepath.Join(st.dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	sets := make([]Set, 0, len(paths))
	for _, p := range paths {
		set, err := decodeFile(p)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	slices.SortFunc(sets, func(a, b Set) int { return strings.Compare(a.ID, b.ID) })
	return sets, nil
}

// Load reads the set saved under id.
func (st *Store) Load(id string) (Set, error) {
	if err := checkID(id); err != nil {
		return Set{}, err
	}
	return decodeFile(filepath.Join(st.dir, id+".toml"))
}

// Image reads the PNG saved with id.
func (st *Store) Image(id string) (image.Image, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(st.dir, id+".png"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s.png: %w", id, err)
	}
	return img, nil
}

// Gallery steps through the saves of a store in id order.
type Gallery struct {
	store *Store
	last  string
}

// NewGallery returns a gallery positioned before the first save.
func NewGallery(st *Store) *Gallery { return &Gallery{store: st} }

// Next returns the save after the one returned last, wrapping around to
// the first. The store is listed on every call so new saves show up.
func (g *Gallery) Next() (Set, error) {
	sets, err := g.store.List()
	if err != nil {
		return Set{}, err
	}
	if len(sets) == 0 {
		return Set{}, ErrEmpty
	}
	i := slices.IndexFunc(sets, func(s Set) bool { return s.ID > g.last })
	if i < 0 {
		i = 0
	}
	g.last = sets[i].ID
	return sets[i], nil
}

func (st *Store) writeFile(name string, write func(*os.File) error) error {
	tmp, err := os.CreateTemp(st.dir, ".tmp-"+name+"-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())
	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(st.dir, name)); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func decodeFile(path string) (Set, error) {
	var set Set
	_, err := toml.DecodeFile(path, &set)
	if errors.Is(err, os.ErrNotExist) {
		return Set{}, fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSuffix(filepath.Base(path), ".toml"))
	}
	if err != nil {
		return Set{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if set.ID == "" {
		set.ID = strings.TrimSuffix(filepath.Base(path), ".toml")
	}
	return set, nil
}

func checkID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func newID() string {
	return strconv.FormatUint(rand.Uint64(), 32)
}
