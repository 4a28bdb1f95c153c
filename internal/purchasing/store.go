package purchasing

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Store is the in-memory collection of one document kind. It is owned by a
// single session and is not safe for concurrent use.
type Store[D Document] struct {
	prefix string
	logger *slog.Logger
	seq    int
	docs   []D
}

// NewStore constructs an empty store issuing ids with prefix.
func NewStore[D Document](prefix string, logger *slog.Logger) *Store[D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[D]{prefix: prefix, logger: logger}
}

// NewOrderStore constructs the purchase order collection.
func NewOrderStore(logger *slog.Logger) *Store[*Order] {
	return NewStore[*Order](OrderIDPrefix, logger)
}

// NewBillStore constructs the purchase bill collection.
func NewBillStore(logger *slog.Logger) *Store[*Bill] {
	return NewStore[*Bill](BillIDPrefix, logger)
}

// Len returns the number of stored documents.
func (s *Store[D]) Len() int {
	return len(s.docs)
}

// List returns copies of all documents in insertion order.
func (s *Store[D]) List() []D {
	return s.Filter(nil)
}

// Filter returns copies of the documents accepted by match, in store order.
// A nil match accepts everything.
func (s *Store[D]) Filter(match func(D) bool) []D {
	out := make([]D, 0, len(s.docs))
	for _, doc := range s.docs {
		if match == nil || match(doc) {
			out = append(out, cloneOf(doc))
		}
	}
	return out
}

// Get returns a copy of the document with id.
func (s *Store[D]) Get(id string) (D, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		var zero D
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneOf(s.docs[idx]), nil
}

// Create assigns a new id to a copy of draft and appends it.
func (s *Store[D]) Create(draft D) (D, error) {
	doc := cloneOf(draft)
	head := doc.Head()
	head.normalize()
	if err := Validate(doc); err != nil {
		var zero D
		return zero, err
	}
	head.ID = s.nextID()
	s.docs = append(s.docs, doc)
	s.logger.Info("purchase document created",
		slog.String("kind", string(doc.Kind())),
		slog.String("id", head.ID),
		slog.String("number", head.Number),
		slog.String("grand_total", head.GrandTotal.StringFixed(2)),
	)
	return cloneOf(doc), nil
}

// Update merges patch over the stored document. Fields absent from the patch
// keep their values; derived totals are recomputed.
func (s *Store[D]) Update(id string, patch Patch[D]) (D, error) {
	var zero D
	if patch == nil {
		return zero, fmt.Errorf("%w: update %s: patch is required", ErrValidation, id)
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	doc := cloneOf(s.docs[idx])
	patch.apply(doc)
	head := doc.Head()
	head.ID = id
	head.normalize()
	if err := Validate(doc); err != nil {
		return zero, err
	}
	s.docs[idx] = doc
	s.logger.Info("purchase document updated",
		slog.String("kind", string(doc.Kind())),
		slog.String("id", id),
		slog.String("grand_total", head.GrandTotal.StringFixed(2)),
	)
	return cloneOf(doc), nil
}

// Seed loads fixture documents keeping their ids. Later creations never
// reuse a seeded id.
func (s *Store[D]) Seed(docs ...D) error {
	for _, d := range docs {
		doc := cloneOf(d)
		head := doc.Head()
		if head.ID == "" {
			return fmt.Errorf("%w: seed document %q has no id", ErrValidation, head.Number)
		}
		if s.indexOf(head.ID) >= 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateID, head.ID)
		}
		head.normalize()
		if n, ok := s.sequenceOf(head.ID); ok && n > s.seq {
			s.seq = n
		}
		s.docs = append(s.docs, doc)
	}
	s.logger.Debug("purchase documents seeded", slog.String("prefix", s.prefix), slog.Int("count", len(docs)))
	return nil
}

func (s *Store[D]) indexOf(id string) int {
	for i, doc := range s.docs {
		if doc.Head().ID == id {
			return i
		}
	}
	return -1
}

func (s *Store[D]) nextID() string {
	for {
		s.seq++
		id := fmt.Sprintf("#%s%03d", s.prefix, s.seq)
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store[D]) sequenceOf(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "#"+s.prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// OrderSearch matches orders whose number, supplier reference or status
// contains query, ignoring case.
func OrderSearch(query string) func(*Order) bool {
	needle := foldCase(query)
	return func(o *Order) bool {
		return containsFolded(needle, o.Number, o.SupplierReference, string(o.Status))
	}
}

// BillSearch matches bills whose bill number, supplier reference or payment
// status contains query, ignoring case.
func BillSearch(query string) func(*Bill) bool {
	needle := foldCase(query)
	return func(b *Bill) bool {
		return containsFolded(needle, b.BillNumber, b.SupplierReference, string(b.PaymentStatus))
	}
}

func foldCase(s string) string {
	return cases.Fold().String(s)
}

func containsFolded(needle string, values ...string) bool {
	if needle == "" {
		return true
	}
	for _, v := range values {
		if strings.Contains(foldCase(v), needle) {
			return true
		}
	}
	return false
}
