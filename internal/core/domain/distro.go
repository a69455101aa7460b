package domain

// Family identifies a package manager family. The host inventory provider
// uses it to pick the query command for the source distribution.
type Family string

const (
	// FamilyRPM covers rpm-based distributions (Fedora, openSUSE, RHEL).
	FamilyRPM Family = "rpm"

	// FamilyDeb covers dpkg-based distributions (Debian, Ubuntu).
	FamilyDeb Family = "deb"

	// FamilyPacman covers pacman-based distributions (Arch and derivatives).
	FamilyPacman Family = "pacman"

	// FamilyAPK covers apk-based distributions (Alpine).
	FamilyAPK Family = "apk"
)

// Distro describes one distribution as the lookup service knows it:
// the repository holding officially maintained packages and, where the
// distribution has one, the user-contributed repository searched as a
// fallback.
type Distro struct {
	ID            string
	Family        Family
	OfficialRepo  string
	CommunityRepo string
}

// SelectTarget applies the repository precedence policy to candidates in
// response order: the first candidate from the official repository wins; only
// when none exists is the community repository scanned. A candidate from any
// other repository is never selected. Selection runs on lookup responses, so
// outcomes carry OriginNetwork.
func (d Distro) SelectTarget(candidates []Candidate) Outcome {
	for _, c := range candidates {
		if c.Repo == d.OfficialRepo {
			return FoundIn(c.Name, OriginNetwork)
		}
	}
	if d.CommunityRepo != "" {
		for _, c := range candidates {
			if c.Repo == d.CommunityRepo {
				return FoundIn(c.Name, OriginNetwork)
			}
		}
	}
	return NotFoundFrom(OriginNetwork)
}

// BuiltinDistros returns the built-in distribution table, keyed by distro ID.
// Repository identifiers follow the lookup service's naming. Configuration
// may add entries or override these.
func BuiltinDistros() map[string]Distro {
	return map[string]Distro{
		"arch": {
			ID:            "arch",
			Family:        FamilyPacman,
			OfficialRepo:  "arch",
			CommunityRepo: "aur",
		},
		"debian": {
			ID:           "debian",
			Family:       FamilyDeb,
			OfficialRepo: "debian_13",
		},
		"ubuntu": {
			ID:           "ubuntu",
			Family:       FamilyDeb,
			OfficialRepo: "ubuntu_24_04",
		},
		"fedora": {
			ID:           "fedora",
			Family:       FamilyRPM,
			OfficialRepo: "fedora_42",
		},
		"opensuse": {
			ID:           "opensuse",
			Family:       FamilyRPM,
			OfficialRepo: "opensuse_leap_15_6",
		},
		"alpine": {
			ID:            "alpine",
			Family:        FamilyAPK,
			OfficialRepo:  "alpine_3_22_main",
			CommunityRepo: "alpine_3_22_community",
		},
	}
}
