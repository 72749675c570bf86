package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/drinkshop/backend/internal/catalog"
	"github.com/drinkshop/backend/internal/pricing"
	"github.com/drinkshop/backend/internal/repositories/slot"
	"github.com/rs/zerolog/log"
)

const (
	// slotKeyPrefix namespaces cart slots in the durable storage
	slotKeyPrefix = "drinkshop-cart"

	DefaultSizeName = "M"

	// SessionHeader carries the caller's cart slot key on HTTP requests
	SessionHeader = "X-Cart-Session"
)

// Line is one priced, quantity-bearing configuration of a product.
// Display fields are snapshots taken at add time: later catalog edits do
// not retroactively change a line already in the cart.
type Line struct {
	LineID    string            `json:"lineId"`
	ProductID string            `json:"productId"`
	Name      string            `json:"name"`
	Image     string            `json:"image"`
	BasePrice int64             `json:"basePrice"`
	SizeName  string            `json:"size"`
	SizeDelta int64             `json:"sizeDelta"`
	Toppings  []catalog.Topping `json:"toppings"`
	Quantity  int64             `json:"quantity"`
}

// UnitPrice recomputes the per-unit price from the line's own snapshot
// fields, never from a live product lookup.
func (l Line) UnitPrice() int64 {
	price := l.BasePrice + l.SizeDelta
	for _, topping := range l.Toppings {
		price += topping.PriceDelta
	}
	return price
}

// Total is the line total: unit price times quantity
func (l Line) Total() int64 {
	return l.UnitPrice() * l.Quantity
}

// mergeKey identifies "the same configuration": product, size and the
// topping set as an unordered set of ids. Two adds whose keys match merge
// into one line with summed quantity.
func (l Line) mergeKey() string {
	ids := make([]string, 0, len(l.Toppings))
	for _, topping := range l.Toppings {
		ids = append(ids, topping.ID)
	}
	sort.Strings(ids)
	return l.ProductID + "|" + l.SizeName + "|" + strings.Join(ids, ",")
}

// Store owns the ordered line sequence of one cart. It is explicitly
// constructed with its durable slot and owner key, loaded on creation,
// and persists the full sequence after every mutation. State is only
// committed after the slot write succeeds; a failed write leaves the
// cart as it was.
type Store struct {
	mu      sync.Mutex
	storage slot.Storage
	key     string
	lines   []Line
	isOpen  bool
	lastID  int64
}

// NewStore loads the cart for owner from the slot. An absent or
// unparseable slot yields an empty cart, never an error.
func NewStore(ctx context.Context, storage slot.Storage, owner string) *Store {
	store := &Store{
		storage: storage,
		key:     slotKeyPrefix + ":" + owner,
	}
	store.load(ctx)
	return store
}

func (s *Store) load(ctx context.Context) {
	payload, ok, err := s.storage.Read(ctx, s.key)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("Failed to read cart slot, starting empty")
		return
	}
	if !ok {
		return
	}
	var lines []Line
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("Corrupt cart slot, starting empty")
		return
	}
	s.lines = lines
}

// AddToCart merges the configuration into an existing line or appends a
// new one, persists, and opens the cart. Quantity defaults to 1, size to
// M. Unknown topping ids are ignored.
func (s *Store) AddToCart(ctx context.Context, product catalog.Product, quantity int64, sizeName string, toppingIDs []string) (Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}
	if sizeName == "" {
		sizeName = DefaultSizeName
	}

	toppings := make([]catalog.Topping, 0, len(toppingIDs))
	for _, id := range toppingIDs {
		if topping, ok := product.ToppingByID(id); ok {
			toppings = append(toppings, topping)
		}
	}

	candidate := Line{
		LineID:    s.nextLineID(),
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		BasePrice: product.BasePrice,
		SizeName:  sizeName,
		SizeDelta: pricing.SizeDelta(product, sizeName),
		Toppings:  toppings,
		Quantity:  quantity,
	}

	updated := make([]Line, len(s.lines))
	copy(updated, s.lines)

	merged := false
	for i := range updated {
		if updated[i].mergeKey() == candidate.mergeKey() {
			updated[i].Quantity += quantity
			candidate = updated[i]
			merged = true
			break
		}
	}
	if !merged {
		updated = append(updated, candidate)
	}

	if err := s.persist(ctx, updated); err != nil {
		return Line{}, err
	}
	s.lines = updated
	s.isOpen = true
	return candidate, nil
}

// RemoveFromCart deletes the line with the given id. A missing id is a
// no-op, not an error.
func (s *Store) RemoveFromCart(ctx context.Context, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, lineID)
}

func (s *Store) removeLocked(ctx context.Context, lineID string) error {
	updated := make([]Line, 0, len(s.lines))
	for _, line := range s.lines {
		if line.LineID != lineID {
			updated = append(updated, line)
		}
	}
	if len(updated) == len(s.lines) {
		return nil
	}
	if err := s.persist(ctx, updated); err != nil {
		return err
	}
	s.lines = updated
	return nil
}

// UpdateQuantity sets the line quantity exactly. A quantity below 1
// removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return s.removeLocked(ctx, lineID)
	}

	updated := make([]Line, len(s.lines))
	copy(updated, s.lines)
	changed := false
	for i := range updated {
		if updated[i].LineID == lineID {
			updated[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	if err := s.persist(ctx, updated); err != nil {
		return err
	}
	s.lines = updated
	return nil
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, []Line{}); err != nil {
		return err
	}
	s.lines = nil
	return nil
}

// Lines returns a copy of the line sequence in insertion order
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Total sums line totals across the cart, recomputed from snapshots
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, line := range s.lines {
		total += line.Total()
	}
	return total
}

// Count sums quantities across the cart
func (s *Store) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// IsOpen reports whether the cart UI flag was opened by a successful add
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// SetOpen sets the cart-visible UI flag
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = open
}

func (s *Store) persist(ctx context.Context, lines []Line) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.storage.Write(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// nextLineID generates a session-unique, time-based line id
func (s *Store) nextLineID() string {
	id := time.Now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
