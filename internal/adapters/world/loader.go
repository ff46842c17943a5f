// Package world loads the world file and serves the live location graph.
package world

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.WorldLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover resolves path to a world file. A regular file is returned as is;
// a directory is searched upwards for world.yaml.
func (l *Loader) Discover(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrWorldNotFound, err.Error()), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrWorldNotFound, "path does not exist"), "path", path)
	}
	if !info.IsDir() {
		return abs, nil
	}

	for currentDir := abs; ; {
		candidate := filepath.Join(currentDir, domain.WorldFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrWorldNotFound, "no "+domain.WorldFileName+" in any parent directory"), "cwd", path)
}

// Load discovers, reads and validates the world file at path.
func (l *Loader) Load(path string) (*domain.World, error) {
	worldPath, err := l.Discover(path)
	if err != nil {
		return nil, err
	}

	var file Worldfile
	fingerprint, err := readAndUnmarshalYAML(worldPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", worldPath)
	}

	if file.Version != "" && file.Version != domain.WorldVersion {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedWorldVersion, "world file rejected"), "version", file.Version)
		return nil, zerr.With(err, "path", worldPath)
	}

	routing, err := buildRouting(file.Routing)
	if err != nil {
		return nil, zerr.With(err, "path", worldPath)
	}

	nodes, err := buildNodes(file.Nodes)
	if err != nil {
		return nil, zerr.With(err, "path", worldPath)
	}

	w := domain.NewWorld(worldPath, fingerprint, routing, nodes)
	l.checkReferences(w)
	return w, nil
}

// readAndUnmarshalYAML decodes the file into target and returns the xxhash of its bytes.
func readAndUnmarshalYAML[T any](path string, target *T) (uint64, error) {
	// #nosec G304 -- path is resolved by Discover
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, zerr.Wrap(domain.ErrWorldReadFailed, err.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return 0, zerr.Wrap(domain.ErrWorldParseFailed, parseErr.Error())
	}

	return xxhash.Sum64(data), nil
}

func buildRouting(dto *RoutingDTO) (domain.RoutingSettings, error) {
	routing := domain.DefaultRoutingSettings()
	if dto == nil {
		return routing, nil
	}

	if dto.Hub != "" {
		routing.Hub = domain.NewNode(dto.Hub)
	}
	if dto.PreseedDepth != nil {
		if *dto.PreseedDepth < 0 {
			return routing, zerr.With(zerr.Wrap(domain.ErrInvalidPreseedDepth, "routing rejected"), "preseed_depth", *dto.PreseedDepth)
		}
		routing.PreseedDepth = *dto.PreseedDepth
	}
	if dto.AllowPartialPaths != nil {
		routing.AllowPartialPaths = *dto.AllowPartialPaths
	}
	if dto.Exclude != nil {
		if dto.Exclude.Names != nil {
			routing.Exclude.Names = slices.Clone(dto.Exclude.Names)
		}
		if dto.Exclude.NumberedPrefixes != nil {
			routing.Exclude.NumberedPrefixes = slices.Clone(dto.Exclude.NumberedPrefixes)
		}
	}
	if dto.Synonyms != nil {
		routing.Synonyms = make(map[domain.Node]domain.Node, len(dto.Synonyms))
		for from, to := range dto.Synonyms {
			if from == "" || to == "" {
				return routing, zerr.With(zerr.Wrap(domain.ErrEmptyNodeName, "synonym rejected"), "synonym", from+" -> "+to)
			}
			routing.Synonyms[domain.NewNode(from)] = domain.NewNode(to)
		}
	}
	return routing, nil
}

func buildNodes(dtos map[string]*NodeDTO) (map[domain.Node]domain.NodeSpec, error) {
	nodes := make(map[domain.Node]domain.NodeSpec, len(dtos))
	for name, dto := range dtos {
		if name == "" {
			return nil, zerr.Wrap(domain.ErrEmptyNodeName, "node rejected")
		}

		var spec domain.NodeSpec
		if dto != nil {
			spec.Access = dto.Access
			spec.Edges = make([]domain.Edge, 0, len(dto.Edges))
			for _, e := range dto.Edges {
				if e.To == "" {
					return nil, zerr.With(zerr.Wrap(domain.ErrEmptyNodeName, "edge rejected"), "node", name)
				}
				spec.Edges = append(spec.Edges, domain.Edge{To: domain.NewNode(e.To), Access: e.Access})
			}
		}
		nodes[domain.NewNode(name)] = spec
	}
	return nodes, nil
}

// checkReferences warns about routing settings naming undeclared nodes.
// Dangling edges are left to the router, which reports them when a search reaches them.
func (l *Loader) checkReferences(w *domain.World) {
	if w.Routing.PreseedDepth > 0 && !w.Has(w.Routing.Hub) {
		l.Logger.Warn(fmt.Sprintf("hub %s is not declared in %s, the cache will not be pre-seeded", w.Routing.Hub, domain.WorldFileName))
	}
	targets := make([]string, 0, len(w.Routing.Synonyms))
	for _, to := range w.Routing.Synonyms {
		if !w.Has(to) {
			targets = append(targets, to.String())
		}
	}
	slices.Sort(targets)
	for _, to := range slices.Compact(targets) {
		l.Logger.Warn(fmt.Sprintf("synonym target %s is not declared in %s", to, domain.WorldFileName))
	}
}
