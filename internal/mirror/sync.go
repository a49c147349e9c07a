/*
Responsibilities
- Mirror the upstream fixture corpus into the local fixture tree
- Detect drift without destroying evidence: superfluous local tests
  and reference images are reported, never deleted

Mirroring is one-directional and unconditional: a locally edited
fixture is overwritten on the next sync. The denylist keeps known-bad
upstream fixtures out of the mirror entirely.
*/
package mirror

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/rohmanhakim/fixturegen/internal/fixture"
	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/pkg/failure"
	"github.com/rohmanhakim/fixturegen/pkg/fileutil"
	"github.com/rohmanhakim/fixturegen/pkg/hashutil"
)

// denylist holds upstream-relative fixture paths that are never
// mirrored, with the reason they are excluded.
var denylist = map[string]string{
	"structure/svg/not-UTF-8-encoding.svg": "invalid encoding",
}

type Syncer struct {
	metadataSink metadata.MetadataSink
}

func NewSyncer(metadataSink metadata.MetadataSink) Syncer {
	return Syncer{
		metadataSink: metadataSink,
	}
}

// Sync mirrors every non-denylisted upstream fixture under upstreamDir
// into the local fixture tree and reports drift. The local enumeration
// used for the superfluous findings is taken before copying, but the
// findings are unaffected by the copies: mirroring only ever adds
// paths that exist upstream.
func (s *Syncer) Sync(upstreamDir string, roots fixture.Roots) (SyncReport, failure.ClassifiedError) {
	upstream, err := enumerate(upstreamDir, fixture.FixtureExt)
	if err != nil {
		return SyncReport{}, s.fail(&SyncError{
			Message: err.Error(),
			Cause:   ErrCauseUpstreamWalkFailure,
			Path:    upstreamDir,
		})
	}

	localFixtureDir := roots.Abs(roots.FixtureDir)
	local, err := enumerateMissingOK(localFixtureDir, fixture.FixtureExt)
	if err != nil {
		return SyncReport{}, s.fail(&SyncError{
			Message: err.Error(),
			Cause:   ErrCauseLocalWalkFailure,
			Path:    localFixtureDir,
		})
	}

	localReferenceDir := roots.Abs(roots.ReferenceDir)
	refs, err := enumerateMissingOK(localReferenceDir, fixture.RasterExt)
	if err != nil {
		return SyncReport{}, s.fail(&SyncError{
			Message: err.Error(),
			Cause:   ErrCauseLocalWalkFailure,
			Path:    localReferenceDir,
		})
	}

	copied := 0
	unchanged := 0
	var denied []string

	for _, rel := range sortedMembers(upstream) {
		if reason, ok := denylist[rel]; ok {
			denied = append(denied, rel)
			s.metadataSink.RecordError(
				time.Now(),
				"mirror",
				"Syncer.Sync",
				metadata.CausePolicyExcluded,
				"upstream fixture denylisted",
				[]metadata.Attribute{
					metadata.NewAttr(metadata.AttrPath, rel),
					metadata.NewAttr(metadata.AttrReason, reason),
				},
			)
			continue
		}

		src := filepath.Join(upstreamDir, filepath.FromSlash(rel))
		dst := filepath.Join(localFixtureDir, filepath.FromSlash(rel))

		same, sameErr := sameContent(src, dst)
		if sameErr != nil {
			return SyncReport{}, s.fail(&SyncError{
				Message: sameErr.Error(),
				Cause:   ErrCauseCompareFailure,
				Path:    rel,
			})
		}
		if same {
			unchanged++
			continue
		}

		if copyErr := fileutil.CopyFile(src, dst); copyErr != nil {
			return SyncReport{}, s.fail(&SyncError{
				Message: copyErr.Error(),
				Cause:   ErrCauseCopyFailure,
				Path:    rel,
			})
		}
		copied++
		s.metadataSink.RecordArtifact(
			metadata.ArtifactMirroredSVG,
			dst,
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrPath, rel),
			},
		)
	}

	superfluousTests := sortedMembers(local.Difference(upstream))

	impliedFixtures := NewSet[string]()
	for ref := range refs {
		impliedFixtures.Add(fileutil.SwapExtension(ref, fixture.FixtureExt))
	}
	superfluousRefs := sortedMembers(impliedFixtures.Difference(local))

	return NewSyncReport(copied, unchanged, denied, superfluousTests, superfluousRefs), nil
}

func (s *Syncer) fail(err *SyncError) *SyncError {
	s.metadataSink.RecordError(
		time.Now(),
		"mirror",
		"Syncer.Sync",
		mapSyncErrorToMetadataCause(err),
		err.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrPath, err.Path),
		},
	)
	return err
}

// enumerate collects the relative forward-slash paths of all regular
// files under root carrying ext.
func enumerate(root string, ext string) (Set[string], error) {
	found := NewSet[string]()
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if path.Ext(rel) != ext {
			return nil
		}
		found.Add(rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// enumerateMissingOK treats a missing root as an empty tree: a fresh
// mirror starts with no local fixtures at all.
func enumerateMissingOK(root string, ext string) (Set[string], error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return NewSet[string](), nil
	}
	return enumerate(root, ext)
}

func sortedMembers(s Set[string]) []string {
	members := make([]string, 0, len(s))
	for m := range s {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

// sameContent compares fixture content by blake3 digest. A missing
// destination counts as different.
func sameContent(src string, dst string) (bool, error) {
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return false, nil
	}
	srcHash, err := hashutil.HashFile(src, hashutil.HashAlgoBLAKE3)
	if err != nil {
		return false, err
	}
	dstHash, err := hashutil.HashFile(dst, hashutil.HashAlgoBLAKE3)
	if err != nil {
		return false, err
	}
	return srcHash == dstHash, nil
}
