// Package registry exposes the commitment schemes compiled into this build
// by name, each wrapped in a runner that exercises it end to end.
//
// Scheme selection is a build-time decision. Building with any of the tags
//
//	commit_no_pedersen commit_no_elgamal commit_no_groth commit_no_ajtai commit_no_bdlop
//
// removes that scheme: Lookup then returns an error matching
// commit.ErrSchemeDisabled and All omits it.
//
//	s, err := registry.Lookup("pedersen")
//	report, err := s.Run(ctx, cfg, rand.Reader, logging.New(nil))
//
// Runners log through the logging facade. Openings are never logged; the
// opening attribute is always logging.Redacted.
package registry
