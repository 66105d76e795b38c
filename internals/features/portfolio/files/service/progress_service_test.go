// file: internals/features/portfolio/files/service/progress_service_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	fileModel "portofolioku_backend/internals/features/portfolio/files/model"
	nodeModel "portofolioku_backend/internals/features/portfolio/portfolios/model"
)

// memStore: fake in-memory untuk test file + progres. Node dibuat manual
// oleh helper di bawah (builder pohon punya test sendiri).
type memStore struct {
	nodes map[uuid.UUID]nodeModel.PortfolioNodeModel
	files map[uuid.UUID]fileModel.FileArtifactModel
}

func newMemStore() *memStore {
	return &memStore{
		nodes: make(map[uuid.UUID]nodeModel.PortfolioNodeModel),
		files: make(map[uuid.UUID]fileModel.FileArtifactModel),
	}
}

func (m *memStore) CreateFile(ctx context.Context, f *fileModel.FileArtifactModel) error {
	if f.FileArtifactID == uuid.Nil {
		f.FileArtifactID = uuid.New()
	}
	m.files[f.FileArtifactID] = *f
	return nil
}

func (m *memStore) FindFileByID(ctx context.Context, id uuid.UUID) (*fileModel.FileArtifactModel, error) {
	f, ok := m.files[id]
	if !ok {
		return nil, ErrFileNotFound
	}
	out := f
	return &out, nil
}

func (m *memStore) SaveFile(ctx context.Context, f *fileModel.FileArtifactModel) error {
	m.files[f.FileArtifactID] = *f
	return nil
}

func (m *memStore) ListFilesByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) ([]fileModel.FileArtifactModel, error) {
	idSet := make(map[uuid.UUID]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		idSet[id] = true
	}
	var out []fileModel.FileArtifactModel
	for _, f := range m.files {
		if idSet[f.FileArtifactNodeID] && f.FileArtifactState != fileModel.FileStateDeleted {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memStore) ListFilesByNode(ctx context.Context, nodeID uuid.UUID) ([]fileModel.FileArtifactModel, error) {
	var out []fileModel.FileArtifactModel
	for _, f := range m.files {
		if f.FileArtifactNodeID == nodeID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memStore) FindNodeByID(ctx context.Context, id uuid.UUID) (*nodeModel.PortfolioNodeModel, error) {
	n, ok := m.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := n
	return &out, nil
}

func (m *memStore) FindRootNodeFor(ctx context.Context, node *nodeModel.PortfolioNodeModel) (*nodeModel.PortfolioNodeModel, error) {
	for _, n := range m.nodes {
		if n.IsRoot() &&
			n.PortfolioNodeTeacherID == node.PortfolioNodeTeacherID &&
			n.PortfolioNodeSubjectID == node.PortfolioNodeSubjectID &&
			n.PortfolioNodeCycleID == node.PortfolioNodeCycleID &&
			n.PortfolioNodeGroup == node.PortfolioNodeGroup {
			out := n
			return &out, nil
		}
	}
	return nil, ErrNodeNotFound
}

func (m *memStore) ListSubtreeNodeIDs(ctx context.Context, node *nodeModel.PortfolioNodeModel) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, n := range m.nodes {
		if n.PortfolioNodeTeacherID != node.PortfolioNodeTeacherID ||
			n.PortfolioNodeSubjectID != node.PortfolioNodeSubjectID ||
			n.PortfolioNodeCycleID != node.PortfolioNodeCycleID ||
			n.PortfolioNodeGroup != node.PortfolioNodeGroup {
			continue
		}
		if n.PortfolioNodePath == node.PortfolioNodePath ||
			strings.HasPrefix(n.PortfolioNodePath, node.PortfolioNodePath+"/") {
			out = append(out, n.PortfolioNodeID)
		}
	}
	return out, nil
}

func (m *memStore) UpdateNodeProgress(ctx context.Context, nodeID uuid.UUID, percentage float64) error {
	n, ok := m.nodes[nodeID]
	if !ok {
		return ErrNodeNotFound
	}
	n.PortfolioNodeProgressPercentage = percentage
	m.nodes[nodeID] = n
	return nil
}

// addNode: node manual untuk fixture test (root kalau parent nil).
func (m *memStore) addNode(parent *nodeModel.PortfolioNodeModel, key string, in testAssignment) *nodeModel.PortfolioNodeModel {
	n := nodeModel.PortfolioNodeModel{
		PortfolioNodeID:        uuid.New(),
		PortfolioNodeKey:       key,
		PortfolioNodeTitle:     key,
		PortfolioNodePath:      key,
		PortfolioNodeState:     nodeModel.NodeStateActive,
		PortfolioNodeTeacherID: in.teacherID,
		PortfolioNodeSubjectID: in.subjectID,
		PortfolioNodeCycleID:   in.cycleID,
		PortfolioNodeGroup:     in.group,
	}
	if parent != nil {
		n.PortfolioNodeParentID = &parent.PortfolioNodeID
		n.PortfolioNodePath = parent.PortfolioNodePath + "/" + key
		n.PortfolioNodeLevel = parent.PortfolioNodeLevel + 1
	}
	m.nodes[n.PortfolioNodeID] = n
	return &n
}

type testAssignment struct {
	teacherID, subjectID, cycleID uuid.UUID
	group                         string
}

func newTestAssignment() testAssignment {
	return testAssignment{teacherID: uuid.New(), subjectID: uuid.New(), cycleID: uuid.New(), group: "A"}
}

func attachWithState(t *testing.T, svc *FileArtifactService, nodeID uuid.UUID, state string) *fileModel.FileArtifactModel {
	t.Helper()
	ctx := context.Background()
	f, err := svc.Attach(ctx, AttachInput{NodeID: nodeID, Name: "bukti.pdf", UploadedBy: uuid.New()})
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if state == fileModel.FileStatePending {
		return f
	}
	f, err = svc.SetVerification(ctx, f.FileArtifactID, state, nil, uuid.New())
	if err != nil {
		t.Fatalf("SetVerification %s: %v", state, err)
	}
	return f
}

func TestComputePercentage(t *testing.T) {
	mk := func(states ...string) []fileModel.FileArtifactModel {
		out := make([]fileModel.FileArtifactModel, 0, len(states))
		for _, s := range states {
			out = append(out, fileModel.FileArtifactModel{FileArtifactState: s})
		}
		return out
	}

	cases := []struct {
		name  string
		files []fileModel.FileArtifactModel
		want  float64
	}{
		{"tanpa file", nil, 0},
		{"satu dari empat approved", mk("approved", "pending", "rejected", "corrected"), 25},
		{"semua approved", mk("approved", "approved"), 100},
		{"deleted keluar dari pembagi", mk("approved", "deleted", "deleted", "pending"), 50},
		{"semua deleted", mk("deleted", "deleted"), 0},
		{"sepertiga dibulatkan", mk("approved", "pending", "pending"), 33.33},
		{"dua pertiga dibulatkan", mk("approved", "approved", "pending"), 66.67},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputePercentage(tc.files); got != tc.want {
				t.Errorf("ComputePercentage = %v, mau %v", got, tc.want)
			}
		})
	}
}

func TestRecomputeWritesRootOnly(t *testing.T) {
	store := newMemStore()
	in := newTestAssignment()
	root := store.addNode(nil, "portfolio", in)
	section := store.addNode(root, "syllabus", in)

	fileSvc := NewFileArtifactService(store)
	progSvc := NewProgressService(store)
	ctx := context.Background()

	// 4 file tersebar di pohon, 1 approved → 25.00 di root.
	attachWithState(t, fileSvc, root.PortfolioNodeID, fileModel.FileStateApproved)
	attachWithState(t, fileSvc, section.PortfolioNodeID, fileModel.FileStatePending)
	attachWithState(t, fileSvc, section.PortfolioNodeID, fileModel.FileStateRejected)
	attachWithState(t, fileSvc, section.PortfolioNodeID, fileModel.FileStateCorrected)

	pct, err := progSvc.Recompute(ctx, root.PortfolioNodeID)
	if err != nil {
		t.Fatalf("Recompute root: %v", err)
	}
	if pct != 25 {
		t.Errorf("progres root = %v, mau 25", pct)
	}
	if got := store.nodes[root.PortfolioNodeID].PortfolioNodeProgressPercentage; got != 25 {
		t.Errorf("kolom progres root = %v, mau 25", got)
	}

	// Recompute lewat node antara: agregasi tetap satu pohon penuh dan
	// hasilnya tetap ditulis ke root — node antara tidak pernah
	// menyimpan persentase sendiri.
	store.nodes[root.PortfolioNodeID] = withProgress(store.nodes[root.PortfolioNodeID], 0)
	pct, err = progSvc.Recompute(ctx, section.PortfolioNodeID)
	if err != nil {
		t.Fatalf("Recompute lewat seksi: %v", err)
	}
	if pct != 25 {
		t.Errorf("progres lewat seksi = %v, mau 25", pct)
	}
	if got := store.nodes[root.PortfolioNodeID].PortfolioNodeProgressPercentage; got != 25 {
		t.Errorf("kolom progres root = %v, mau 25", got)
	}
	if got := store.nodes[section.PortfolioNodeID].PortfolioNodeProgressPercentage; got != 0 {
		t.Errorf("kolom progres seksi = %v, mau tetap 0", got)
	}
}

func withProgress(n nodeModel.PortfolioNodeModel, pct float64) nodeModel.PortfolioNodeModel {
	n.PortfolioNodeProgressPercentage = pct
	return n
}

func TestFileMutationsRecomputeRoot(t *testing.T) {
	store := newMemStore()
	in := newTestAssignment()
	root := store.addNode(nil, "portfolio", in)
	section := store.addNode(root, "syllabus", in)

	svc := NewFileArtifactService(store)
	ctx := context.Background()

	rootPct := func() float64 {
		return store.nodes[root.PortfolioNodeID].PortfolioNodeProgressPercentage
	}

	// Attach di node dalam → root langsung dihitung ulang (pending = 0%).
	f, err := svc.Attach(ctx, AttachInput{NodeID: section.PortfolioNodeID, Name: "silabus.pdf", UploadedBy: uuid.New()})
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if f.FileArtifactState != fileModel.FileStatePending {
		t.Errorf("state awal = %s, mau pending", f.FileArtifactState)
	}
	if rootPct() != 0 {
		t.Errorf("progres root setelah attach = %v, mau 0", rootPct())
	}

	// Approve → 100.
	got, err := svc.SetVerification(ctx, f.FileArtifactID, fileModel.FileStateApproved, nil, uuid.New())
	if err != nil {
		t.Fatalf("SetVerification: %v", err)
	}
	if got.FileArtifactVerifiedBy == nil || got.FileArtifactVerifiedAt == nil {
		t.Error("stamp verifikator kosong setelah approve")
	}
	if rootPct() != 100 {
		t.Errorf("progres root setelah approve = %v, mau 100", rootPct())
	}

	// Soft delete satu-satunya file → subtree efektif kosong → 0.
	if err := svc.SoftDelete(ctx, f.FileArtifactID, uuid.New()); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if rootPct() != 0 {
		t.Errorf("progres root setelah delete = %v, mau 0", rootPct())
	}
	// Baris tetap ada untuk audit.
	kept, err := store.FindFileByID(ctx, f.FileArtifactID)
	if err != nil {
		t.Fatalf("FindFileByID setelah soft delete: %v", err)
	}
	if kept.FileArtifactState != fileModel.FileStateDeleted {
		t.Errorf("state = %s, mau deleted", kept.FileArtifactState)
	}
}

func TestProgressNeverDecreasesOnApprove(t *testing.T) {
	store := newMemStore()
	in := newTestAssignment()
	root := store.addNode(nil, "portfolio", in)

	svc := NewFileArtifactService(store)
	ctx := context.Background()

	files := make([]*fileModel.FileArtifactModel, 0, 5)
	for i := 0; i < 5; i++ {
		files = append(files, attachWithState(t, svc, root.PortfolioNodeID, fileModel.FileStatePending))
	}

	prev := store.nodes[root.PortfolioNodeID].PortfolioNodeProgressPercentage
	for _, f := range files {
		if _, err := svc.SetVerification(ctx, f.FileArtifactID, fileModel.FileStateApproved, nil, uuid.New()); err != nil {
			t.Fatalf("SetVerification: %v", err)
		}
		cur := store.nodes[root.PortfolioNodeID].PortfolioNodeProgressPercentage
		if cur < prev {
			t.Errorf("progres turun dari %v ke %v saat approve bertambah", prev, cur)
		}
		prev = cur
	}
	if prev != 100 {
		t.Errorf("progres akhir = %v, mau 100", prev)
	}
}

func TestSetVerificationRejectsDeletedState(t *testing.T) {
	store := newMemStore()
	in := newTestAssignment()
	root := store.addNode(nil, "portfolio", in)

	svc := NewFileArtifactService(store)
	f := attachWithState(t, svc, root.PortfolioNodeID, fileModel.FileStatePending)

	for _, state := range []string{fileModel.FileStateDeleted, "archived"} {
		if _, err := svc.SetVerification(context.Background(), f.FileArtifactID, state, nil, uuid.New()); !errors.Is(err, ErrInvalidFileState) {
			t.Errorf("state %q: err = %v, mau ErrInvalidFileState", state, err)
		}
	}
}

func TestAttachUnknownNode(t *testing.T) {
	svc := NewFileArtifactService(newMemStore())
	_, err := svc.Attach(context.Background(), AttachInput{NodeID: uuid.New(), Name: "x.pdf", UploadedBy: uuid.New()})
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("err = %v, mau ErrNodeNotFound", err)
	}
}
