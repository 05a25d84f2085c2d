// Package profile loads, saves, and watches action profiles.
//
// A profile is an XML document with an actions root, one action
// element per action, and button or axis children for the bindings:
//
//	<actions>
//		<action name="Jump" threshold="0.5">
//			<Button Device="Keyboard" Positive="space" Negative="" Invert="false"/>
//		</action>
//		<action name="MoveX" threshold="0.5">
//			<Axis Device="Joystick" Value="left_x" Invert="false"/>
//		</action>
//	</actions>
//
// # Decoding
//
// Element tags and attribute names are matched case-insensitively. A
// binding's positive identifier is taken from the Value attribute, or
// from the legacy Positive attribute when Value is absent or blank.
// Bindings are re-validated against the device backends at load time.
// Loading is fail-fast: any malformed or invalid fragment aborts the
// whole load and no partial profile is returned.
//
// # Encoding
//
// Encoding emits attributes in a fixed order. An axis writes only its
// Value identifier; a button writes Positive and Negative even when
// empty. Nesting is indented with tabs. Decoding an encoded profile
// reproduces the original actions, thresholds, and bindings.
//
// # Watching
//
// Watcher reloads the document when it changes on disk, coalescing
// bursts of file events with a debounce interval. Reload results carry
// either a fresh profile or the load error; the consumer decides when
// to swap.
package profile
