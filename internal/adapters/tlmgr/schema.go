package tlmgr

import (
	"encoding/json"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// tlpObj mirrors one entry of `tlmgr info --json` output (the tlpobj JSON
// shape documented by TeX Live). The core consumes only the name, the
// dependency list and the four file categories; the remaining fields are
// decoded for completeness.
type tlpObj struct {
	Name              string              `json:"name"`
	ShortDesc         string              `json:"shortdesc"`
	LongDesc          string              `json:"longdesc"`
	Category          string              `json:"category"`
	Catalogue         string              `json:"catalogue"`
	ContainerChecksum string              `json:"containerchecksum"`
	LRev              uint64              `json:"lrev"`
	RRev              uint64              `json:"rrev"`
	RunSize           uint64              `json:"runsize"`
	DocSize           uint64              `json:"docsize"`
	SrcSize           uint64              `json:"srcsize"`
	ContainerSize     uint64              `json:"containersize"`
	SrcContainerSize  uint64              `json:"srccontainersize"`
	DocContainerSize  uint64              `json:"doccontainersize"`
	Available         bool                `json:"available"`
	Installed         bool                `json:"installed"`
	Relocated         bool                `json:"relocated"`
	RunFiles          []string            `json:"runfiles"`
	SrcFiles          []string            `json:"srcfiles"`
	Executes          []string            `json:"executes"`
	Depends           []string            `json:"depends"`
	PostActions       []string            `json:"postactions"`
	DocFiles          []tlpDocFile        `json:"docfiles"`
	BinFiles          map[string][]string `json:"binfiles"`
	BinSize           map[string]uint64   `json:"binsize"`
	CatalogueData     *tlpCatalogueData   `json:"cataloguedata"`
}

// tlpDocFile is a documentation file entry; unlike the other categories,
// docfiles are objects carrying catalogue annotations.
type tlpDocFile struct {
	File   string `json:"file"`
	Lang   string `json:"lang"`
	Detail string `json:"detail"`
}

type tlpCatalogueData struct {
	Topics  string `json:"topics"`
	Version string `json:"version"`
	License string `json:"license"`
	CTAN    string `json:"ctan"`
	Date    string `json:"date"`
	Related string `json:"related"`
}

// decodePackages parses `tlmgr info --json` output into domain records,
// flattening docfile objects to their paths.
func decodePackages(data []byte) ([]domain.Package, error) {
	var objs []tlpObj
	if err := json.Unmarshal(data, &objs); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataMalformed.Error())
	}

	packages := make([]domain.Package, 0, len(objs))
	for _, obj := range objs {
		pkg := domain.Package{
			Name:     obj.Name,
			Depends:  obj.Depends,
			BinFiles: obj.BinFiles,
			RunFiles: obj.RunFiles,
			SrcFiles: obj.SrcFiles,
		}
		if len(obj.DocFiles) > 0 {
			pkg.DocFiles = make([]string, 0, len(obj.DocFiles))
			for _, doc := range obj.DocFiles {
				pkg.DocFiles = append(pkg.DocFiles, doc.File)
			}
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}
