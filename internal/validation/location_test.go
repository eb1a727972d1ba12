package validation

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ── 测试辅助 ──

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

// staticCodeExists 基于内存编码集合的查重依赖
// 键为已归一化（大写）的编码，值为持有该编码的记录 ID
func staticCodeExists(codes map[string]string) CodeExistsFunc {
	return func(_ context.Context, code string, excludeID string) (bool, error) {
		owner, ok := codes[strings.ToUpper(code)]
		if !ok {
			return false, nil
		}
		if excludeID != "" && owner == excludeID {
			return false, nil
		}
		return true, nil
	}
}

func validCandidate() LocationCandidate {
	return LocationCandidate{
		Name:         "Main Lobby",
		LocationCode: "loc-001",
		BuildingID:   strPtr("b-001"),
	}
}

// ── 必填规则 ──

func TestValidate_EmptyName(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(nil))

	for _, name := range []string{"", "   ", "\t\n"} {
		cand := validCandidate()
		cand.Name = name

		_, errs, err := v.Validate(context.Background(), cand, "")
		if err != nil {
			t.Fatalf("Validate 不应返回 I/O 错误: %v", err)
		}
		if !errs.Has(FieldName) {
			t.Errorf("name=%q 期望 name 字段报错", name)
		}
	}
}

func TestValidate_EmptyCode(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(nil))

	cand := validCandidate()
	cand.LocationCode = "  "

	_, errs, _ := v.Validate(context.Background(), cand, "")
	if !errs.Has(FieldLocationCode) {
		t.Error("期望 location_code 字段报错")
	}
}

// ── 编码唯一规则 ──

func TestValidate_DuplicateCode_CaseInsensitive(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(map[string]string{"LOC-1": "id-1"}))

	cand := validCandidate()
	cand.LocationCode = "loc-1"

	_, errs, _ := v.Validate(context.Background(), cand, "")
	if !errs.Has(FieldLocationCode) {
		t.Error("大小写不同的重复编码应视为同一编码并报错")
	}
}

func TestValidate_DuplicateCode_SelfMatchExcluded(t *testing.T) {
	// 更新记录 id=7 自身的编码 "LOC-004"，提交 "loc-004" 应豁免查重
	v := NewLocationValidator(staticCodeExists(map[string]string{"LOC-004": "7"}))

	cand := validCandidate()
	cand.LocationCode = "loc-004"

	normalized, errs, err := v.Validate(context.Background(), cand, "7")
	if err != nil {
		t.Fatalf("Validate 不应返回 I/O 错误: %v", err)
	}
	if !errs.Empty() {
		t.Errorf("自匹配应豁免查重，实际: %v", errs)
	}
	if normalized.LocationCode != "LOC-004" {
		t.Errorf("期望归一化编码 LOC-004，实际=%s", normalized.LocationCode)
	}
}

func TestValidate_CodeExistsIOError(t *testing.T) {
	ioErr := errors.New("db down")
	v := NewLocationValidator(func(_ context.Context, _ string, _ string) (bool, error) {
		return false, ioErr
	})

	_, _, err := v.Validate(context.Background(), validCandidate(), "")
	if !errors.Is(err, ioErr) {
		t.Errorf("查重依赖的 I/O 错误应原样返回，实际: %v", err)
	}
}

// ── 组件选择规则 ──

func TestValidate_NoComponentSelected(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(nil))

	cand := validCandidate()
	cand.BuildingID = nil

	_, errs, _ := v.Validate(context.Background(), cand, "")
	if !errs.Has(FieldComponents) {
		t.Error("五个组件均未选择时，期望 components 合成字段报错")
	}
}

func TestValidate_AnySingleComponentClears(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(nil))

	cases := []struct {
		name string
		set  func(*LocationCandidate)
	}{
		{"building", func(c *LocationCandidate) { c.BuildingID = strPtr("b-1") }},
		{"floor", func(c *LocationCandidate) { c.FloorID = strPtr("f-1") }},
		{"block", func(c *LocationCandidate) { c.BlockID = strPtr("bl-1") }},
		{"room", func(c *LocationCandidate) { c.RoomID = strPtr("r-1") }},
		{"office", func(c *LocationCandidate) { c.OfficeID = strPtr("o-1") }},
	}

	for _, tc := range cases {
		cand := validCandidate()
		cand.BuildingID = nil
		tc.set(&cand)

		_, errs, _ := v.Validate(context.Background(), cand, "")
		if errs.Has(FieldComponents) {
			t.Errorf("仅选择 %s 时不应报 components 错误", tc.name)
		}
	}
}

// ── 坐标规则 ──

func TestValidate_IncompleteCoordinatePair(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(nil))

	// 只有纬度 → 错误挂在缺失的经度上
	cand := validCandidate()
	cand.Latitude = f64Ptr(23.8)

	_, errs, _ := v.Validate(context.Background(), cand, "")
	if !errs.Has(FieldLongitude) {
		t.Error("仅提供纬度时，期望 longitude 字段报错")
	}
	if errs.Has(FieldLatitude) {
		t.Error("仅提供纬度时，latitude 字段不应报错")
	}

	// 只有经度 → 错误挂在缺失的纬度上
	cand = validCandidate()
	cand.Longitude = f64Ptr(90.4)

	_, errs, _ = v.Validate(context.Background(), cand, "")
	if !errs.Has(FieldLatitude) {
		t.Error("仅提供经度时，期望 latitude 字段报错")
	}
}

func TestValidate_CoordinatePair_BothOrNeither(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(nil))

	// 都不提供 → 无坐标错误
	cand := validCandidate()
	_, errs, _ := v.Validate(context.Background(), cand, "")
	if errs.Has(FieldLatitude) || errs.Has(FieldLongitude) {
		t.Errorf("无坐标时不应报坐标错误: %v", errs)
	}

	// 都提供且在范围内 → 无坐标错误
	cand = validCandidate()
	cand.Latitude = f64Ptr(23.7623)
	cand.Longitude = f64Ptr(90.3782)
	_, errs, _ = v.Validate(context.Background(), cand, "")
	if !errs.Empty() {
		t.Errorf("完整合法坐标不应报错: %v", errs)
	}
}

func TestValidate_CoordinateRange(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(nil))

	cases := []struct {
		name      string
		lat, lng  float64
		wantField string
	}{
		{"纬度超上界", 90.01, 0, FieldLatitude},
		{"纬度超下界", -91, 0, FieldLatitude},
		{"经度超上界", 0, 180.5, FieldLongitude},
		{"经度超下界", 0, -181, FieldLongitude},
	}

	for _, tc := range cases {
		cand := validCandidate()
		cand.Latitude = f64Ptr(tc.lat)
		cand.Longitude = f64Ptr(tc.lng)

		_, errs, _ := v.Validate(context.Background(), cand, "")
		if !errs.Has(tc.wantField) {
			t.Errorf("%s: 期望 %s 字段报错", tc.name, tc.wantField)
		}
	}
}

func TestValidate_CoordinateBoundaryInclusive(t *testing.T) {
	v := NewLocationValidator(staticCodeExists(nil))

	// 边界值 -90/90/-180/180 均合法（闭区间）
	cases := [][2]float64{
		{-90, 0}, {90, 0}, {0, -180}, {0, 180}, {-90, -180}, {90, 180},
	}

	for _, pair := range cases {
		cand := validCandidate()
		cand.Latitude = f64Ptr(pair[0])
		cand.Longitude = f64Ptr(pair[1])

		_, errs, _ := v.Validate(context.Background(), cand, "")
		if !errs.Empty() {
			t.Errorf("边界坐标 (%v, %v) 应合法，实际: %v", pair[0], pair[1], errs)
		}
	}
}

// ── 错误累积与归一化 ──

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	// name="X", code="LOC-002", 无组件, latitude=23.8, longitude 缺失
	// → 同时报 components 与 longitude 两类错误
	v := NewLocationValidator(staticCodeExists(nil))

	cand := LocationCandidate{
		Name:         "X",
		LocationCode: "LOC-002",
		Latitude:     f64Ptr(23.8),
	}

	_, errs, _ := v.Validate(context.Background(), cand, "")
	if !errs.Has(FieldComponents) {
		t.Error("期望 components 报错")
	}
	if !errs.Has(FieldLongitude) {
		t.Error("期望 longitude 报错")
	}
	if len(errs) != 2 {
		t.Errorf("期望恰好 2 个违规字段，实际: %v", errs)
	}
}

func TestValidate_OutOfRangeLatitudeOnly(t *testing.T) {
	// name="Y", code="LOC-003", room 已选, latitude=95.0, longitude=90.0
	// → 仅 latitude 报范围错误
	v := NewLocationValidator(staticCodeExists(nil))

	cand := LocationCandidate{
		Name:         "Y",
		LocationCode: "LOC-003",
		RoomID:       strPtr("r-1"),
		Latitude:     f64Ptr(95.0),
		Longitude:    f64Ptr(90.0),
	}

	_, errs, _ := v.Validate(context.Background(), cand, "")
	if !errs.Has(FieldLatitude) {
		t.Error("期望 latitude 报范围错误")
	}
	if errs.Has(FieldLongitude) {
		t.Error("longitude 在范围内，不应报错")
	}
	if len(errs) != 1 {
		t.Errorf("期望恰好 1 个违规字段，实际: %v", errs)
	}
}

func TestValidate_SuccessNormalizesCode(t *testing.T) {
	// name="Main Lobby", code="loc-001", building 已选, 无坐标 → 成功且编码大写
	v := NewLocationValidator(staticCodeExists(nil))

	cand := LocationCandidate{
		Name:         "  Main Lobby  ",
		LocationCode: "loc-001",
		BuildingID:   strPtr("b-001"),
	}

	normalized, errs, err := v.Validate(context.Background(), cand, "")
	if err != nil || !errs.Empty() {
		t.Fatalf("期望校验成功，errs=%v err=%v", errs, err)
	}
	if normalized.LocationCode != "LOC-001" {
		t.Errorf("期望编码归一化为 LOC-001，实际=%s", normalized.LocationCode)
	}
	if normalized.Name != "Main Lobby" {
		t.Errorf("期望名称裁剪为 Main Lobby，实际=%q", normalized.Name)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	// 对成功校验的归一化输出再次校验：仍成功且字段不再变化
	v := NewLocationValidator(staticCodeExists(nil))

	cand := LocationCandidate{
		Name:         " Lobby ",
		LocationCode: " loc-009 ",
		Address:      " 12 Manik Mia Avenue ",
		OfficeID:     strPtr("o-1"),
	}

	first, errs, err := v.Validate(context.Background(), cand, "")
	if err != nil || !errs.Empty() {
		t.Fatalf("首次校验应成功，errs=%v err=%v", errs, err)
	}

	second, errs, err := v.Validate(context.Background(), first, "")
	if err != nil || !errs.Empty() {
		t.Fatalf("二次校验应成功，errs=%v err=%v", errs, err)
	}
	if second != first {
		t.Errorf("归一化应幂等，首次=%+v 二次=%+v", first, second)
	}
}
