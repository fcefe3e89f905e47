package curvedit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/curvedit/internal/compiler"
	"github.com/aretw0/curvedit/pkg/adapters/memory"
	"github.com/aretw0/curvedit/pkg/curve"
	"github.com/aretw0/curvedit/pkg/observability"
	"github.com/aretw0/curvedit/pkg/ports"
	"github.com/aretw0/curvedit/pkg/schema"
)

// Document is a table opened in an Editor, together with its unsaved state.
type Document struct {
	Name  string
	Table *curve.Table
	dirty bool
}

// Dirty reports whether the table changed since it was opened or last saved.
func (d *Document) Dirty() bool { return d.dirty }

// Editor is the high-level entry point of the library.
// It owns the open tables, resolves curves across them and applies edits,
// marking the affected tables dirty.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	store   ports.TableStore
	parser  *compiler.Parser
	logger  *slog.Logger
	metrics *observability.Metrics
	gap     float32
	samples int
	docs    []*Document
}

// Option defines a functional option for configuring the Editor.
type Option func(*Editor)

// WithStore sets where tables are loaded from and saved to (default: in memory).
func WithStore(s ports.TableStore) Option {
	return func(e *Editor) {
		e.store = s
	}
}

// WithLogger sets a custom structured logger for the editor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithMetrics records parse, save, evaluation and edit metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Editor) {
		e.metrics = m
	}
}

// WithMinKeyframeDistance sets the X gap kept between a moved keyframe and its neighbours.
func WithMinKeyframeDistance(d float32) Option {
	return func(e *Editor) {
		e.gap = d
	}
}

// WithSamples sets the default number of intervals for Sample.
func WithSamples(n int) Option {
	return func(e *Editor) {
		e.samples = n
	}
}

// New creates an Editor with no open tables.
func New(opts ...Option) *Editor {
	e := &Editor{
		parser:  compiler.NewParser(),
		gap:     curve.MinKeyframeDistance,
		samples: curve.DefaultSamples,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = memory.NewStore(nil)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Open loads and parses the table stored under name. Opening a table that
// is already open returns the open document.
func (e *Editor) Open(ctx context.Context, name string) (*Document, error) {
	if doc := e.find(name); doc != nil {
		return doc, nil
	}

	data, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	table, err := e.parser.Parse(data)
	e.metrics.ObserveParse(time.Since(start), err)
	if err != nil {
		e.logger.Warn("table rejected", "table", name, "error", err)
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	doc := &Document{Name: name, Table: table}
	e.docs = append(e.docs, doc)
	e.logger.Info("table opened", "table", name, "curves", len(table.Curves), "version", table.Version)

	for _, c := range table.Curves {
		if n := e.countNamed(c.Name); n > 1 {
			e.logger.Warn("curve name is ambiguous", "table", name, "curve", c.Name, "occurrences", n)
		}
	}
	return doc, nil
}

// Create opens a new, empty table. It is dirty until saved.
func (e *Editor) Create(name string) (*Document, error) {
	if e.find(name) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentExists, name)
	}
	doc := &Document{Name: name, Table: &curve.Table{}, dirty: true}
	e.docs = append(e.docs, doc)
	return doc, nil
}

// Close forgets an open table without saving it.
func (e *Editor) Close(name string) error {
	i := slices.IndexFunc(e.docs, func(d *Document) bool { return d.Name == name })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	e.docs = slices.Delete(e.docs, i, i+1)
	return nil
}

// Documents returns the open tables in the order they were opened.
func (e *Editor) Documents() []*Document {
	return slices.Clone(e.docs)
}

// Document returns the open table name.
func (e *Editor) Document(name string) (*Document, error) {
	doc := e.find(name)
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	return doc, nil
}

// Save writes the table back to the store and clears its dirty flag.
func (e *Editor) Save(ctx context.Context, name string) error {
	doc, err := e.Document(name)
	if err != nil {
		return err
	}

	text, err := compiler.Format(doc.Table)
	if err == nil {
		err = e.store.Save(ctx, name, []byte(text))
	}
	e.metrics.ObserveSave(err)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	doc.dirty = false
	e.logger.Info("table saved", "table", name, "bytes", len(text))
	return nil
}

// SaveAll saves every dirty table and reports all failures.
func (e *Editor) SaveAll(ctx context.Context) error {
	var errs []error
	for _, doc := range e.docs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if doc.dirty {
			if err := e.Save(ctx, doc.Name); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Visible returns the builtin curves followed by the curves of every open table.
func (e *Editor) Visible() curve.Set {
	tables := make([]*curve.Table, len(e.docs))
	for i, doc := range e.docs {
		tables[i] = doc.Table
	}
	return curve.Visible(tables...)
}

// Lookup resolves a curve name, ignoring case, the way Subcurve segments do.
func (e *Editor) Lookup(name string) (*curve.Curve, error) {
	c := e.Visible().Lookup(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrCurveNotFound, name)
	}
	return c, nil
}

// Evaluate returns the value of the named curve at x.
func (e *Editor) Evaluate(name string, x float32) (float32, error) {
	if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: x = %v", ErrNonFinite, x)
	}
	c, err := e.Lookup(name)
	if err != nil {
		return 0, err
	}
	e.metrics.ObserveEvaluations(1)
	return c.Evaluate(x, e.Visible()), nil
}

// Sample evaluates the named curve at n+1 points across its keyframes.
// n <= 0 uses the editor's default.
func (e *Editor) Sample(name string, n int) ([]curve.Point, error) {
	c, err := e.Lookup(name)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = e.samples
	}
	e.metrics.ObserveEvaluations(n + 1)
	return c.Sample(e.Visible(), n), nil
}

// AddCurve appends a new linear curve to the open table doc.
func (e *Editor) AddCurve(doc, name string) (*curve.Curve, error) {
	d, err := e.Document(doc)
	if err != nil {
		return nil, err
	}
	if err := e.checkName(name, nil); err != nil {
		return nil, err
	}

	c := curve.NewCurve(name)
	d.Table.Curves = append(d.Table.Curves, c)
	e.touched("add-curve", d)
	return c, nil
}

// RemoveCurve deletes a curve from the table that owns it. Subcurve segments
// still naming it evaluate to zero until they are re-pointed.
func (e *Editor) RemoveCurve(name string) error {
	d, c, err := e.owner(name)
	if err != nil {
		return err
	}
	d.Table.Curves = slices.DeleteFunc(d.Table.Curves, func(x *curve.Curve) bool { return x == c })
	e.touched("remove-curve", d)
	return nil
}

// Rename renames a curve and re-points every Subcurve segment naming it, in
// every open table. It returns the number of segments rewritten.
func (e *Editor) Rename(from, to string) (int, error) {
	d, c, err := e.owner(from)
	if err != nil {
		return 0, err
	}
	if err := e.checkName(to, c); err != nil {
		return 0, err
	}

	old := c.Name
	c.Name = to
	touched := []*Document{d}

	total := 0
	for _, doc := range e.docs {
		if n := doc.Table.RewriteReferences(old, to); n > 0 {
			total += n
			touched = append(touched, doc)
		}
	}
	e.touched("rename", touched...)
	e.logger.Debug("curve renamed", "from", old, "to", to, "references", total)
	return total, nil
}

// InsertKeyframe adds a Constant keyframe at (x, y) to the named curve and
// returns its index.
func (e *Editor) InsertKeyframe(name string, x, y float32, snap curve.Snap) (int, error) {
	d, c, err := e.owner(name)
	if err != nil {
		return 0, err
	}
	i, err := c.InsertKeyframe(x, y, snap, e.Visible())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.Name, err)
	}
	e.touched("insert-keyframe", d)
	return i, nil
}

// RemoveKeyframe deletes keyframe i of the named curve.
func (e *Editor) RemoveKeyframe(name string, i int) error {
	d, c, err := e.owner(name)
	if err != nil {
		return err
	}
	if err := c.RemoveKeyframe(i); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	e.touched("remove-keyframe", d)
	return nil
}

// MoveKeyframe moves keyframe i of the named curve towards (x, y) under snap.
func (e *Editor) MoveKeyframe(name string, i int, x, y float32, snap curve.Snap) (curve.Keyframe, error) {
	d, c, err := e.owner(name)
	if err != nil {
		return curve.Keyframe{}, err
	}
	kf, err := c.MoveKeyframe(i, x, y, snap, e.Visible(), e.gap)
	if err != nil {
		return curve.Keyframe{}, fmt.Errorf("%s: %w", c.Name, err)
	}
	e.touched("move-keyframe", d)
	return kf, nil
}

// SetSegment replaces the segment leaving keyframe i of the named curve.
func (e *Editor) SetSegment(name string, i int, seg curve.Segment) error {
	d, c, err := e.owner(name)
	if err != nil {
		return err
	}
	if err := c.SetSegment(i, seg); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	e.touched("set-segment", d)
	return nil
}

func (e *Editor) find(name string) *Document {
	for _, doc := range e.docs {
		if doc.Name == name {
			return doc
		}
	}
	return nil
}

// owner finds the open table holding the curve that name resolves to.
func (e *Editor) owner(name string) (*Document, *curve.Curve, error) {
	target := e.Visible().Lookup(name)
	if target == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrCurveNotFound, name)
	}
	for _, doc := range e.docs {
		if slices.Contains(doc.Table.Curves, target) {
			return doc, target, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrBuiltin, target.Name)
}

// checkName rejects names the table grammar cannot hold and names used by
// any visible curve other than self.
func (e *Editor) checkName(name string, self *curve.Curve) error {
	if _, err := schema.Spew(schema.String(), name); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, c := range e.Visible() {
		if c != self && strings.EqualFold(c.Name, name) {
			return fmt.Errorf("%w: %s", ErrNameCollision, c.Name)
		}
	}
	return nil
}

func (e *Editor) countNamed(name string) int {
	n := 0
	for _, c := range e.Visible() {
		if strings.EqualFold(c.Name, name) {
			n++
		}
	}
	return n
}

func (e *Editor) touched(op string, docs ...*Document) {
	for _, d := range docs {
		d.dirty = true
	}
	e.metrics.ObserveEdit(op)
}
