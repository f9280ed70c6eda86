package smartmask

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for binder and processor events.
var (
	SignalBinderCreated    = capitan.NewSignal("smartmask.binder.created", "Binder instantiated")
	SignalBindingCreated   = capitan.NewSignal("smartmask.binding.created", "Element bound to a mask")
	SignalBindingFailed    = capitan.NewSignal("smartmask.binding.failed", "Element could not be bound")
	SignalBindAllComplete  = capitan.NewSignal("smartmask.bindall.complete", "Batch binding finished")
	SignalElementMasked    = capitan.NewSignal("smartmask.element.masked", "Element text reformatted")
	SignalProcessorCreated = capitan.NewSignal("smartmask.processor.created", "Processor instantiated")
	SignalReceiveComplete  = capitan.NewSignal("smartmask.receive.complete", "Receive operation finished")
	SignalSendComplete     = capitan.NewSignal("smartmask.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyElement        = capitan.NewStringKey("element")
	KeyMask           = capitan.NewStringKey("mask")
	KeyEvent          = capitan.NewStringKey("event")
	KeyCursor         = capitan.NewIntKey("cursor")
	KeyMaskCount      = capitan.NewIntKey("mask_count")
	KeyBoundCount     = capitan.NewIntKey("bound_count")
	KeyFailedCount    = capitan.NewIntKey("failed_count")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
	KeyFormattedCount = capitan.NewIntKey("formatted_count")
)

// emitBinderCreated emits an event when a binder is created.
func emitBinderCreated(ctx context.Context, maskCount int) {
	capitan.Emit(ctx, SignalBinderCreated,
		KeyMaskCount.Field(maskCount),
	)
}

// emitBindingCreated emits an event when an element is bound.
func emitBindingCreated(ctx context.Context, element string, mask MaskName) {
	capitan.Emit(ctx, SignalBindingCreated,
		KeyElement.Field(element),
		KeyMask.Field(string(mask)),
	)
}

// emitBindingFailed reports an element that was skipped.
func emitBindingFailed(ctx context.Context, element, mask string, err error) {
	capitan.Error(ctx, SignalBindingFailed,
		KeyElement.Field(element),
		KeyMask.Field(mask),
		KeyError.Field(err),
	)
}

// emitBindAllComplete emits an event when a batch of declarations is processed.
func emitBindAllComplete(ctx context.Context, bound, failed int, duration time.Duration) {
	capitan.Emit(ctx, SignalBindAllComplete,
		KeyBoundCount.Field(bound),
		KeyFailedCount.Field(failed),
		KeyDuration.Field(duration),
	)
}

// emitElementMasked emits an event when a handler rewrote an element.
func emitElementMasked(ctx context.Context, element string, mask MaskName, event EventType, cursor int) {
	capitan.Emit(ctx, SignalElementMasked,
		KeyElement.Field(element),
		KeyMask.Field(string(mask)),
		KeyEvent.Field(string(event)),
		KeyCursor.Field(cursor),
	)
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitReceiveComplete emits an event when receive finishes.
func emitReceiveComplete(ctx context.Context, contentType, typeName string, duration time.Duration, formatted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFormattedCount.Field(formatted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReceiveComplete, fields...)
	}
}

// emitSendComplete emits an event when send finishes.
func emitSendComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, formatted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyFormattedCount.Field(formatted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSendComplete, fields...)
	}
}
