package grid

import "github.com/matzehuels/spheregrid/pkg/color"

// Default returns the reference grid: three revenue tiers, five business
// domains around a core, thirteen nodes and thirteen edges. It doubles as
// the template printed by "spheregrid sample".
func Default() *Config {
	return &Config{
		Name:   "WG Sphere Grid",
		Canvas: Canvas{Width: 1920, Height: 1080},
		Title: Title{
			Text:     "WONDERFUL GROWTH",
			Subtitle: "企業スフィア盤",
			X:        50,
			Y:        40,
			FontSize: 32,
		},
		Gates: Gates{
			Title: "基盤ゲート達成条件",
			Conditions: []string{
				"現預金：固定費4ヶ月分以上",
				"粗利率：40%以上",
				"稼働率：100%",
				"採用：契約済みBacklogのみ",
				"オフィス：賃料 ≤ 粗利15%",
			},
			X: 50, Y: 120, Width: 320, Height: 180,
		},
		Tiers: []Tier{
			{ID: "R30", Label: "年商 3,000万", LabelEn: "¥30M", Radius: 220, GlowIntensity: 1.0, Threshold: 30_000_000},
			{ID: "R60", Label: "年商 6,000万", LabelEn: "¥60M", Radius: 360, GlowIntensity: 0.7, Threshold: 60_000_000},
			{ID: "R100", Label: "年商 1億", LabelEn: "¥100M", Radius: 500, GlowIntensity: 0.5, Threshold: 100_000_000},
		},
		Domains: []Domain{
			{ID: "PEOPLE", Label: "採用・人材", LabelEn: "People", Color: color.RGB{R: 0.2, G: 0.6, B: 0.9}, Accent: color.RGB{R: 0.3, G: 0.7, B: 1.0}, StartAngle: -90, EndAngle: -18},
			{ID: "INFRA", Label: "設備", LabelEn: "Infra", Color: color.RGB{R: 0.9, G: 0.5, B: 0.2}, Accent: color.RGB{R: 1.0, G: 0.6, B: 0.3}, StartAngle: -18, EndAngle: 54},
			{ID: "PROCESS", Label: "制度", LabelEn: "Process", Color: color.RGB{R: 0.6, G: 0.4, B: 0.8}, Accent: color.RGB{R: 0.7, G: 0.5, B: 0.9}, StartAngle: 54, EndAngle: 126},
			{ID: "QUALITY", Label: "品質", LabelEn: "Quality", Color: color.RGB{R: 0.3, G: 0.8, B: 0.5}, Accent: color.RGB{R: 0.4, G: 0.9, B: 0.6}, StartAngle: 126, EndAngle: 198},
			{ID: "BUSINESS", Label: "新規事業", LabelEn: "Business", Color: color.RGB{R: 0.9, G: 0.3, B: 0.4}, Accent: color.RGB{R: 1.0, G: 0.4, B: 0.5}, StartAngle: 198, EndAngle: 270},
			{ID: CoreDomain, Label: "CORE", LabelEn: "Core", Color: color.RGB{R: 1.0, G: 0.84, B: 0}, Accent: color.RGB{R: 1.0, G: 0.92, B: 0.5}, StartAngle: 0, EndAngle: 360},
		},
		Nodes: defaultNodes(),
		Edges: defaultEdges(),
		Resources: []ResourceType{
			{Type: "人材", Label: "人材", Description: "採用・育成リソース", Color: color.RGB{R: 0.2, G: 0.6, B: 0.9}},
			{Type: "資金", Label: "資金", Description: "財務・投資リソース", Color: color.RGB{R: 0.9, G: 0.7, B: 0.2}},
			{Type: "実績", Label: "実績", Description: "成功体験・ノウハウ", Color: color.RGB{R: 0.3, G: 0.8, B: 0.5}},
			{Type: "時間", Label: "時間", Description: "継続的な取り組み", Color: color.RGB{R: 0.6, G: 0.4, B: 0.8}},
			{Type: "信頼", Label: "信頼", Description: "社内外の信頼関係", Color: color.RGB{R: 0.9, G: 0.5, B: 0.3}},
			{Type: "技術", Label: "技術", Description: "技術力・専門性", Color: color.RGB{R: 0.4, G: 0.7, B: 0.9}},
		},
		Background: Background{
			Vignette:   Vignette{Enabled: true, Intensity: 0.6, RadiusRatio: 0.85},
			CenterGlow: CenterGlow{Enabled: true, Radius: 700, Opacity: 0.4, Blur: 250},
			StarField: StarField{
				Enabled:     true,
				AvoidRadius: 180,
				Layers: []StarLayer{
					{Count: 80, Size: Range{1, 2}, Opacity: Range{0.2, 0.5}},
					{Count: 40, Size: Range{2, 3}, Opacity: Range{0.4, 0.7}},
					{Count: 15, Size: Range{3, 5}, Opacity: Range{0.6, 0.9}},
				},
			},
		},
		Legend: Legend{
			X: 1520, Y: 40, Width: 360, Height: 560,
			Items: []LegendItem{
				{State: StateMastered, Label: "定着", LabelEn: "Mastered", Description: "習得完了・定着済み"},
				{State: StateUnlocked, Label: "解放済", LabelEn: "Unlocked", Description: "習得中・実施中"},
				{State: StateEligible, Label: "解放可", LabelEn: "Eligible", Description: "条件クリア・解放可能"},
				{State: StateLocked, Label: "未解放", LabelEn: "Locked", Description: "条件未達成"},
			},
		},
	}
}

func mult(v float64) *float64 { return &v }

func req(pairs ...any) []Requirement {
	out := make([]Requirement, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Requirement{Type: pairs[i].(string), Count: pairs[i+1].(int)})
	}
	return out
}

func defaultNodes() []Node {
	return []Node{
		{
			ID: "CORE", Label: "WG\nCORE", Tier: CoreTier, State: StateMastered,
			Domain: CoreDomain, Importance: ImportanceMajor, Shape: ShapeOctagon, SizeMultiplier: mult(1.3),
			Description: "企業の核心・全ての起点", Effect: "全ノードへのアクセス解放",
		},

		{
			ID: "HIRE_3", Label: "採用\n〜3名", Tier: "R30", Angle: -45, State: StateEligible,
			Domain: "PEOPLE", Importance: ImportanceStandard, Shape: ShapeCircle,
			Description: "最初の正社員採用", Effect: "キャパシティ+30%",
			Requirements: req("資金", 2, "実績", 1),
		},
		{
			ID: "OFFICE_15", Label: "オフィス\n賃料≤15%", Tier: "R30", Angle: 15, State: StateEligible,
			Domain: "INFRA", Importance: ImportanceStandard, Shape: ShapeDiamond,
			Description: "適正なオフィスコスト", Effect: "固定費最適化",
			Requirements: req("資金", 1),
		},
		{
			ID: "PRODUCTIZE", Label: "型化\n研修商品", Tier: "R30", Angle: 75, State: StateEligible,
			Domain: "PROCESS", Importance: ImportanceMajor, Shape: ShapeHexagon, SizeMultiplier: mult(1.15),
			Description: "サービスの標準化・商品化", Effect: "再現性+50%, スケーラビリティ確保",
			Requirements: req("技術", 2, "時間", 1),
		},
		{
			ID: "BACKOFFICE", Label: "バック\nオフィス", Tier: "R30", Angle: 150, State: StateEligible,
			Domain: "PROCESS", Importance: ImportanceStandard, Shape: ShapeCircle,
			Description: "経理・総務の基盤整備", Effect: "管理効率+20%",
			Requirements: req("資金", 1, "人材", 1),
		},

		{
			ID: "WELFARE", Label: "福利厚生\n導入", Tier: "R60", Angle: -60, State: StateLocked,
			Domain: "PEOPLE", Importance: ImportanceStandard, Shape: ShapeCircle,
			Description: "社員の満足度向上施策", Effect: "定着率+15%",
			Requirements: req("資金", 2, "信頼", 1),
		},
		{
			ID: "HIRE_MORE", Label: "採用\n追加", Tier: "R60", Angle: -15, State: StateLocked,
			Domain: "PEOPLE", Importance: ImportanceMajor, Shape: ShapeCircle, SizeMultiplier: mult(1.15),
			Description: "さらなる人材確保", Effect: "キャパシティ+50%",
			Requirements: req("資金", 3, "人材", 1, "実績", 2),
		},
		{
			ID: "SEC_PREP", Label: "セキュリティ\n認証準備", Tier: "R60", Angle: 45, State: StateLocked,
			Domain: "QUALITY", Importance: ImportanceStandard, Shape: ShapeDiamond,
			Description: "セキュリティ認証の準備段階", Effect: "大企業案件対応可能",
			Requirements: req("技術", 2, "時間", 2),
		},
		{
			ID: "SALES_PROCESS", Label: "営業\nプロセス", Tier: "R60", Angle: 115, State: StateLocked,
			Domain: "PROCESS", Importance: ImportanceMajor, Shape: ShapeHexagon, SizeMultiplier: mult(1.15),
			Description: "営業活動の体系化", Effect: "受注効率+40%",
			Requirements: req("実績", 2, "技術", 1),
		},

		{
			ID: "NEW_BIZ", Label: "新規事業\n×1", Tier: "R100", Angle: -30, State: StateLocked,
			Domain: "BUSINESS", Importance: ImportanceMajor, Shape: ShapeOctagon, SizeMultiplier: mult(1.2),
			Description: "新たな事業領域への進出", Effect: "収益源の多角化",
			Requirements: req("資金", 5, "人材", 2, "実績", 3),
		},
		{
			ID: "FUNCTION_SPLIT", Label: "専任機能\n分離", Tier: "R100", Angle: 30, State: StateLocked,
			Domain: "PEOPLE", Importance: ImportanceStandard, Shape: ShapeCircle,
			Description: "機能別の専任体制構築", Effect: "専門性深化",
			Requirements: req("人材", 3, "資金", 2),
		},
		{
			ID: "SEC_GET", Label: "認証\n本取得", Tier: "R100", Angle: 90, State: StateLocked,
			Domain: "QUALITY", Importance: ImportanceMajor, Shape: ShapeDiamond, SizeMultiplier: mult(1.15),
			Description: "セキュリティ認証の正式取得", Effect: "信頼性証明, 大型案件獲得",
			Requirements: req("技術", 3, "時間", 3, "資金", 2),
		},
		{
			ID: "LEAD_DEV", Label: "リード\n育成", Tier: "R100", Angle: 160, State: StateLocked,
			Domain: "PEOPLE", Importance: ImportanceMajor, Shape: ShapeCircle, SizeMultiplier: mult(1.15),
			Description: "次世代リーダーの育成", Effect: "組織の持続可能性確保",
			Requirements: req("人材", 2, "時間", 3, "信頼", 2),
		},
	}
}

func defaultEdges() []Edge {
	return []Edge{
		{From: "CORE", To: "HIRE_3", Type: PathMain},
		{From: "CORE", To: "OFFICE_15", Type: PathMain},
		{From: "CORE", To: "PRODUCTIZE", Type: PathMain},
		{From: "CORE", To: "BACKOFFICE", Type: PathMain},

		{From: "HIRE_3", To: "WELFARE", Type: PathOptional, Curve: CurveBezier},
		{From: "HIRE_3", To: "HIRE_MORE", Type: PathMain},
		{From: "HIRE_MORE", To: "FUNCTION_SPLIT", Type: PathMain},
		{From: "FUNCTION_SPLIT", To: "LEAD_DEV", Type: PathMain},

		{From: "PRODUCTIZE", To: "SALES_PROCESS", Type: PathMain},
		{From: "SALES_PROCESS", To: "NEW_BIZ", Type: PathMain, Curve: CurveBezier},

		{From: "SALES_PROCESS", To: "SEC_PREP", Type: PathOptional, Curve: CurveBezier},
		{From: "SEC_PREP", To: "SEC_GET", Type: PathMain},

		{From: "BACKOFFICE", To: "SEC_PREP", Type: PathCrossDomain, Curve: CurveBezier, Intensity: mult(0.25)},
	}
}
