package assets

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// objRefs holds the material statements found in an OBJ or MTL file.
type objRefs struct {
	libraries []string // mtllib
	uses      []string // usemtl
	declared  []string // newmtl
}

func scanRefs(data []byte) objRefs {
	var refs objRefs
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		name := strings.Join(fields[1:], " ")
		switch fields[0] {
		case "mtllib":
			refs.libraries = append(refs.libraries, name)
		case "usemtl":
			refs.uses = append(refs.uses, name)
		case "newmtl":
			refs.declared = append(refs.declared, name)
		}
	}
	return refs
}

// Verify checks the fetched files of src against each other. The geometry
// has to name the configured material library, since the OBJ loader takes
// its materials from the mtllib line, and every material the geometry
// uses must be declared there.
func Verify(src ModelSource, files map[string]Result) error {
	geom, ok := files[src.Geometry]
	if !ok {
		return fmt.Errorf("%w: %s was not fetched", ErrLoadFailed, src.Geometry)
	}
	if src.Material == "" {
		return nil
	}
	mat, ok := files[src.Material]
	if !ok {
		return fmt.Errorf("%w: %s was not fetched", ErrLoadFailed, src.Material)
	}

	refs := scanRefs(geom.Data)
	want := filepath.Base(src.Material)
	found := false
	for _, lib := range refs.libraries {
		if filepath.Base(lib) == want {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s does not reference material %s (mtllib %v)",
			ErrLoadFailed, src.Geometry, want, refs.libraries)
	}

	declared := make(map[string]bool)
	for _, name := range scanRefs(mat.Data).declared {
		declared[name] = true
	}
	for _, name := range refs.uses {
		if !declared[name] {
			return fmt.Errorf("%w: %s uses material %q missing from %s",
				ErrLoadFailed, src.Geometry, name, src.Material)
		}
	}
	return nil
}
