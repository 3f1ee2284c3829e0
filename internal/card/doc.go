// Package card contains the whole card checker: form state, per-field
// masking, the four shape rules, the card face preview and the
// confirmation modal.
//
// Allowed here:
// - pure masking, validation and preview functions
// - the Widget state machine and its change notifications
//
// Not allowed here:
// - terminal or HTTP rendering, key handling, logging
// - anything that stores or forwards a card field
package card
