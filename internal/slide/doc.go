// Package slide keeps a set of views in step with one shared slide index.
//
// A Container owns Views and "current slide" display targets. Navigating
// (Next, Previous, Jump) re-renders every view into the element that carries
// its id in the Container's Document. Elements are resolved by id on every
// render, so a view whose element is missing is skipped rather than failing.
//
// View variants:
//   - ListView: highlights one <li> of a fixed markup string per step
//   - MultispanView: per-slide text, carried forward over gaps
//   - AppendView: fragments accumulate as the slide advances (optionally scrolling)
//   - SimpleView: exact slide match, else a default, else empty
package slide
