// Package ui implements backyard's terminal interface with Bubble Tea.
//
// # Architecture Overview
//
// Model is the root tea.Model. It owns a nav bar, one scrollable viewport for
// the current page body, a footer with short help, and two overlays (help and
// session log). Every page component is a plain struct with pointer-receiver
// Update/handleKey methods and a Render method; the root routes messages to
// them and re-renders the active page into the viewport after each update.
//
// # Pages
//
//   - Home: static text (home.go)
//   - Sightings: recent observations near the configured point (sightings.go)
//   - Notable: state picker plus notable-bird results (region_picker.go, region_search.go)
//   - Contact: validated form relayed by email (contact.go, validate.go)
//
// # Fetch Lifecycle
//
// All pages are mounted when New runs, so the recent sightings fetch starts
// with the program. Network calls run inside tea.Cmd functions (messages.go)
// and report back as messages. Each view keeps a state.View whose Phase decides what is drawn:
// Loading, Failed, Populated, or nothing at all while Idle. Commands recover
// panics into failure messages so Loading always ends. Responses are applied
// in arrival order; an older response that lands after a newer trigger still
// overwrites the view.
//
// # Notable Search Binding
//
// The region picker emits regionSubmittedMsg tagged with the subscription of
// the view bound to it. Mount binds, Unmount releases, and messages carrying a
// released subscription are dropped.
//
// # Keyboard Focus
//
// While a contact field or the picker filter has focus, every key except
// ctrl+c goes to that component; esc hands the keyboard back to the page.
//
// # Layout
//
// Below LayoutCompactWidth the nav collapses to a "☰ Menu" toggle (m). Cards
// flow into as many CardWidth columns as fit. Once the page viewport is
// scrolled, the footer shows "↑ top" and t returns to the top.
package ui
