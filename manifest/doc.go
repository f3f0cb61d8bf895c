// Package manifest provides the YAML schema, parsing, validation, and
// application of declarative mapping manifests.
//
// A manifest is the authoritative, human-reviewed description of how type
// pairs map. Applying one against a type registry produces the same
// typemap configurations the fluent builders would.
//
// # Key capabilities
//
//   - Declare explicit field pairs with direction, converter, inverse, and
//     element-type settings
//   - Exclude properties on both sides with one entry
//   - Tri-state null policies (unset entries defer to engine defaults)
//   - By-default pairing of the remaining properties by normalized name
//   - Structural validation without compiled types (for linting)
//
// # Schema overview
//
// A manifest file has the following structure:
//
//	version: "1"
//	maps:
//	  - a: store.Person
//	    b: crm.Contact
//	    by_default: true
//	    map_nulls: true
//	    exclude:
//	      - Internal
//	    fields:
//	      - a: Name
//	        b: FullName
//	      - a: Employer.Name
//	        b: Firm.Title
//	        direction: a-to-b
//	      - a: Tags[Label]
//	        b: Labels[Text]
//	        converter: upperCase
//	      - a: Legacy
//	        exclude: true
//
// # Path syntax
//
// Property expressions support simple fields ("Name"), dotted nesting
// ("Employer.Name"), and bracketed element access ("Tags[Label]",
// "Rows[2]"). See typemap.ResolveProperty for the full semantics.
//
// # Validation vs application
//
// Validate checks shape only: schema constraints, path well-formedness,
// direction keywords, duplicate and conflicting declarations. Apply
// resolves type and property names against a typemeta.Registry and drives
// the typemap and fieldmap builders, so every typed failure surfaces
// there.
package manifest
