package database

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Collection used by the test suites in place of a
// live MongoDB. It understands the filter shapes the services issue: exact
// field equality and {"$in": [...]}, plus single-key sorts. Documents are
// normalized through the bson codec so values compare the way they would
// after a mongo round trip.
type Memory struct {
	mu   sync.Mutex
	docs []bson.M
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Find(ctx context.Context, filter interface{}, sort interface{}, results interface{}) error {
	f, err := normalize(filter)
	if err != nil {
		return err
	}
	m.mu.Lock()
	var matched []bson.M
	for _, doc := range m.docs {
		if matches(doc, f) {
			matched = append(matched, doc)
		}
	}
	m.mu.Unlock()

	if sort != nil {
		if err := sortDocs(matched, sort); err != nil {
			return err
		}
	}

	slice := reflect.ValueOf(results).Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(matched))
	for _, doc := range matched {
		elem := reflect.New(slice.Type().Elem())
		if err := decodeInto(doc, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}

func (m *Memory) FindOne(ctx context.Context, filter interface{}, result interface{}) error {
	f, err := normalize(filter)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if matches(doc, f) {
			return decodeInto(doc, result)
		}
	}
	return ErrNotFound
}

func (m *Memory) InsertOne(ctx context.Context, doc interface{}) error {
	normalized, err := normalize(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs = append(m.docs, normalized)
	m.mu.Unlock()
	return nil
}

func (m *Memory) FindOneAndUpdate(ctx context.Context, filter interface{}, patch interface{}, result interface{}) (bool, error) {
	f, err := normalize(filter)
	if err != nil {
		return false, err
	}
	p, err := normalize(patch)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if matches(doc, f) {
			for k, v := range p {
				doc[k] = v
			}
			if result != nil {
				if err := decodeInto(doc, result); err != nil {
					return false, err
				}
			}
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) UpdateByID(ctx context.Context, id primitive.ObjectID, patch interface{}, result interface{}) (bool, error) {
	return m.FindOneAndUpdate(ctx, bson.M{"_id": id}, patch, result)
}

// Count reports how many documents match filter; used by tests to assert
// that failed workflows leave nothing behind.
func (m *Memory) Count(filter interface{}) int {
	f, err := normalize(filter)
	if err != nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, doc := range m.docs {
		if matches(doc, f) {
			n++
		}
	}
	return n
}

// normalize round-trips v through the bson codec so every value takes its
// canonical wire type (time.Time → primitive.DateTime, ints → int32/int64,
// slices → bson.A).
func normalize(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeInto(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok {
			return false
		}
		if clause, isDoc := asMap(want); isDoc {
			in, hasIn := clause["$in"]
			if !hasIn {
				return false
			}
			values, _ := in.(bson.A)
			found := false
			for _, v := range values {
				if equalValues(got, v) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			continue
		}
		if !equalValues(got, want) {
			return false
		}
	}
	return true
}

func asMap(v interface{}) (bson.M, bool) {
	switch t := v.(type) {
	case bson.M:
		return t, true
	case bson.D:
		out := bson.M{}
		for _, e := range t {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}

func equalValues(a, b interface{}) bool {
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// sortDocs orders matched documents by the first key of a bson.D sort
// spec. Values must be mutually comparable (numbers, strings or dates).
func sortDocs(docs []bson.M, sortSpec interface{}) error {
	spec, ok := sortSpec.(bson.D)
	if !ok || len(spec) == 0 {
		return fmt.Errorf("unsupported sort spec %T", sortSpec)
	}
	key := spec[0].Key
	desc := false
	switch d := spec[0].Value.(type) {
	case int:
		desc = d < 0
	case int32:
		desc = d < 0
	case int64:
		desc = d < 0
	}
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i][key], docs[j][key]
		if desc {
			a, b = b, a
		}
		return lessValues(a, b)
	})
	return nil
}

func lessValues(a, b interface{}) bool {
	if af, aok := asFloat(a); aok {
		bf, _ := asFloat(b)
		return af < bf
	}
	switch at := a.(type) {
	case string:
		bt, _ := b.(string)
		return at < bt
	case primitive.DateTime:
		bt, _ := b.(primitive.DateTime)
		return at < bt
	}
	return false
}
