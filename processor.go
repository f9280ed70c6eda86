package smartmask

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// TagMask is the struct tag naming the rule for a field: `mask:"phone"`.
const TagMask = "mask"

func init() {
	sentinel.Tag(TagMask)
}

// Processor formats tagged struct fields and moves them through a codec.
// It is the server-side counterpart of Binder: a submitted form is
// normalized the same way the browser field displayed it.
//
// Processors are safe for concurrent use. SetMasker may be called at any
// time to swap a rule.
type Processor[T Cloner[T]] struct {
	codec Codec

	mu      sync.RWMutex
	maskers map[MaskName]Masker

	// Field plans, immutable after construction
	fields []fieldPlan

	typeName string
}

// fieldPlan describes how to format a single field.
type fieldPlan struct {
	index      []int    // reflect.Value.FieldByIndex access path
	name       string   // field name for error messages
	mask       MaskName // rule applied to the field
	isBytes    bool     // true if field is []byte, false if string
	ptrIndices []int    // indices where pointer dereference is needed
	isSlice    bool     // true if field is []string
	isMap      bool     // true if field is map[K]string
}

// typePlans caches the scan result for one type.
type typePlans struct {
	typeName string
	fields   []fieldPlan
}

var (
	planCache   = make(map[reflect.Type]*typePlans)
	planCacheMu sync.RWMutex
)

// NewProcessor creates a Processor for type T with the built-in rules.
// A field whose mask tag names no rule fails with a *ConfigError wrapping
// ErrInvalidTag.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		maskers:  builtinMaskers(),
		fields:   plans.fields,
		typeName: plans.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// SetMasker registers a rule for the given name.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetMasker(name MaskName, m Masker) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maskers[name] = m
	return p
}

// Fields returns the dotted names of every tagged field, in scan order.
func (p *Processor[T]) Fields() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.name
	}
	return names
}

// getOrBuildPlans returns cached field plans for T, scanning on first use.
func getOrBuildPlans[T Cloner[T]]() (*typePlans, error) {
	typ := reflect.TypeFor[T]()

	planCacheMu.RLock()
	if plans, ok := planCache[typ]; ok {
		planCacheMu.RUnlock()
		return plans, nil
	}
	planCacheMu.RUnlock()

	plans, err := buildPlans[T]()
	if err != nil {
		return nil, err
	}

	planCacheMu.Lock()
	defer planCacheMu.Unlock()
	if cached, ok := planCache[typ]; ok {
		return cached, nil
	}
	planCache[typ] = plans
	return plans, nil
}

// buildPlans creates field plans for type T by scanning struct tags.
func buildPlans[T Cloner[T]]() (*typePlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typePlans{
		typeName: spec.TypeName,
	}

	if err := buildPlansRecursive(plans, spec, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildPlansRecursive processes fields and nested structs.
func buildPlansRecursive(plans *typePlans, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildPlansRecursive(plans, *nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildPlansRecursive(plans, *nested, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		val, ok := field.Tags[TagMask]
		if !ok {
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			return newConfigError(ErrInvalidTag, val, fullName)
		}

		name, err := ParseMaskName(val)
		if err != nil {
			return newConfigError(ErrInvalidTag, val, fullName)
		}

		plans.fields = append(plans.fields, fieldPlan{
			index:      fullIndex,
			name:       fullName,
			mask:       name,
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		})
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(TagMask); ok {
			fm.Tags[TagMask] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// Validate checks that every tagged field has a registered rule.
func (p *Processor[T]) Validate() error {
	var zero T
	if _, ok := any(&zero).(Formattable); ok {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, plan := range p.fields {
		if m, ok := p.maskers[plan.mask]; !ok || m == nil {
			return newConfigError(ErrMissingMasker, string(plan.mask), plan.name)
		}
	}
	return nil
}

// Format returns a formatted clone of obj. The original is not modified.
func (p *Processor[T]) Format(_ context.Context, obj *T) (*T, error) {
	if obj == nil {
		return nil, nil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	clone := (*obj).Clone()
	if err := p.format(&clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// Receive unmarshals data and formats the tagged fields.
// Use for submitted forms and other external input.
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	var retErr error
	defer func() {
		emitReceiveComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.fields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	if err := p.format(&obj); err != nil {
		retErr = fmt.Errorf("format: %w", err)
		return nil, retErr
	}
	return &obj, nil
}

// Send formats a clone of obj and marshals it.
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	var retErr error
	var retData []byte
	defer func() {
		emitSendComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.fields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()
	if err := p.format(&clone); err != nil {
		retErr = fmt.Errorf("format: %w", err)
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// format applies the override interface or the reflected field plans.
func (p *Processor[T]) format(obj *T) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if f, ok := any(obj).(Formattable); ok {
		return f.Format(p.maskers)
	}

	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.fields {
		masker := p.maskers[plan.mask]

		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if elem.CanSet() {
					elem.SetString(masker.Mask(elem.String()))
				}
			}
			continue
		}

		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				field.SetMapIndex(k, reflect.ValueOf(masker.Mask(v.String())).Convert(field.Type().Elem()))
			}
			continue
		}

		if !field.CanSet() {
			continue
		}

		if plan.isBytes {
			field.SetBytes([]byte(masker.Mask(string(field.Bytes()))))
		} else {
			field.SetString(masker.Mask(field.String()))
		}
	}

	return nil
}

// getField navigates a field path, dereferencing pointers as needed.
func getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	current := rv
	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
