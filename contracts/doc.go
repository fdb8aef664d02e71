// Package contracts provides the message envelope types carried over the
// mbus in-process messenger.
//
// The messenger delivers arbitrary Go values; this package defines the
// optional envelope family for code that wants identity and routing
// metadata on its messages:
//   - Message: base interface exposing ID, timestamp, sender and target
//   - MessageBase: embeddable implementation of Message
//   - Envelope: generic single-payload carrier
//   - NotificationMessage: string notification with metadata
//   - CallbackMessage: notification carrying a reply callback that the
//     recipient may execute
//
// The messenger never inspects or invokes envelope contents. A
// CallbackMessage's callback is plain payload data; executing it is
// entirely up to the receiving side.
package contracts
